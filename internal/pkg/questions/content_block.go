package questions

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

var ErrInvalidContentBlock = errors.New("invalid content block")

type ContentBlockType string

const (
	ContentBlockHeading   ContentBlockType = "heading"
	ContentBlockParagraph ContentBlockType = "paragraph"
	ContentBlockList      ContentBlockType = "list"
	ContentBlockButton    ContentBlockType = "button"
)

type HeadingSize string

const (
	HeadingSizeSmall      HeadingSize = "s"
	HeadingSizeMedium     HeadingSize = "m"
	HeadingSizeLarge      HeadingSize = "l"
	HeadingSizeExtraLarge HeadingSize = "xl"
)

// ContentBlock is one renderable unit of a question's displayed material.
// The set of implementations is closed to this package.
type ContentBlock interface {
	BlockType() ContentBlockType
	isContentBlock()
}

// Heading keeps the size it was written with; an unset size renders as
// HeadingSizeLarge.
type Heading struct {
	Text string      `json:"text"`
	Size HeadingSize `json:"size,omitempty"`
}

func (h Heading) EffectiveSize() HeadingSize {
	if h.Size == "" {
		return HeadingSizeLarge
	}
	return h.Size
}

type Paragraph struct {
	Text string `json:"text"`
}

type List struct {
	Items   []string `json:"items"`
	Ordered bool     `json:"ordered,omitempty"`
}

type Button struct {
	Text          string `json:"text"`
	Href          string `json:"href"`
	IsStartButton bool   `json:"isStartButton,omitempty"`
}

func (Heading) BlockType() ContentBlockType   { return ContentBlockHeading }
func (Paragraph) BlockType() ContentBlockType { return ContentBlockParagraph }
func (List) BlockType() ContentBlockType      { return ContentBlockList }
func (Button) BlockType() ContentBlockType    { return ContentBlockButton }

func (Heading) isContentBlock()   {}
func (Paragraph) isContentBlock() {}
func (List) isContentBlock()      {}
func (Button) isContentBlock()    {}

// contentBlockEnvelope is the wire shape: a type tag plus one payload field
// named after the tag.
type contentBlockEnvelope struct {
	Type      ContentBlockType `json:"type"`
	Heading   *Heading         `json:"heading,omitempty"`
	Paragraph *Paragraph       `json:"paragraph,omitempty"`
	List      *List            `json:"list,omitempty"`
	Button    *Button          `json:"button,omitempty"`
}

func envelopeOf(block ContentBlock) (contentBlockEnvelope, error) {
	switch b := block.(type) {
	case Heading:
		return contentBlockEnvelope{Type: ContentBlockHeading, Heading: &b}, nil
	case Paragraph:
		return contentBlockEnvelope{Type: ContentBlockParagraph, Paragraph: &b}, nil
	case List:
		return contentBlockEnvelope{Type: ContentBlockList, List: &b}, nil
	case Button:
		return contentBlockEnvelope{Type: ContentBlockButton, Button: &b}, nil
	case *Heading:
		if b != nil {
			return envelopeOf(*b)
		}
	case *Paragraph:
		if b != nil {
			return envelopeOf(*b)
		}
	case *List:
		if b != nil {
			return envelopeOf(*b)
		}
	case *Button:
		if b != nil {
			return envelopeOf(*b)
		}
	case nil:
		return contentBlockEnvelope{}, fmt.Errorf("%w: nil block", ErrInvalidContentBlock)
	default:
		return contentBlockEnvelope{}, fmt.Errorf("%w: unsupported block %T", ErrInvalidContentBlock, block)
	}
	return contentBlockEnvelope{}, fmt.Errorf("%w: nil %T", ErrInvalidContentBlock, block)
}

func (e contentBlockEnvelope) block() (ContentBlock, error) {
	var populated []ContentBlock
	if e.Heading != nil {
		heading := *e.Heading
		if heading.Size != "" && !heading.Size.isValid() {
			return nil, fmt.Errorf("%w: unknown heading size %q", ErrInvalidContentBlock, heading.Size)
		}
		populated = append(populated, heading)
	}
	if e.Paragraph != nil {
		populated = append(populated, *e.Paragraph)
	}
	if e.List != nil {
		populated = append(populated, *e.List)
	}
	if e.Button != nil {
		populated = append(populated, *e.Button)
	}

	if len(populated) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one payload, got %d", ErrInvalidContentBlock, len(populated))
	}
	if populated[0].BlockType() != e.Type {
		return nil, fmt.Errorf("%w: type %q carries a %q payload", ErrInvalidContentBlock, e.Type, populated[0].BlockType())
	}
	return populated[0], nil
}

func (s HeadingSize) isValid() bool {
	switch s {
	case HeadingSizeSmall, HeadingSizeMedium, HeadingSizeLarge, HeadingSizeExtraLarge:
		return true
	}
	return false
}

func MarshalContentBlock(block ContentBlock) ([]byte, error) {
	envelope, err := envelopeOf(block)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope)
}

func UnmarshalContentBlock(data []byte) (ContentBlock, error) {
	var envelope contentBlockEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	return envelope.block()
}

// ContentBlocks is an ordered sequence of blocks that encodes each element
// through the tagged envelope.
type ContentBlocks []ContentBlock

func (c ContentBlocks) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	envelopes := make([]contentBlockEnvelope, 0, len(c))
	for i, block := range c {
		envelope, err := envelopeOf(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		envelopes = append(envelopes, envelope)
	}
	return json.Marshal(envelopes)
}

func (c *ContentBlocks) UnmarshalJSON(data []byte) error {
	var envelopes []contentBlockEnvelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		return err
	}
	if envelopes == nil {
		*c = nil
		return nil
	}

	blocks := make(ContentBlocks, 0, len(envelopes))
	for i, envelope := range envelopes {
		block, err := envelope.block()
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		blocks = append(blocks, block)
	}
	*c = blocks
	return nil
}

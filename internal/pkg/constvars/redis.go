package constvars

const (
	RedisKeySectionCatalog = "recognition:sections:catalog"
)

package responses

import (
	"recognition-service/internal/pkg/constvars"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskSectionDto(t *testing.T) {
	first := TaskStatusDto{TaskID: uuid.New(), TaskName: "Personal details", OrderNumber: 1, Status: constvars.TaskStatusCompleted}
	second := TaskStatusDto{TaskID: uuid.New(), TaskName: "Qualifications", OrderNumber: 2, Status: constvars.TaskStatusInProgress}
	tiedA := TaskStatusDto{TaskID: uuid.New(), TaskName: "Employment A", OrderNumber: 3, Status: constvars.TaskStatusNotStarted}
	tiedB := TaskStatusDto{TaskID: uuid.New(), TaskName: "Employment B", OrderNumber: 3, Status: constvars.TaskStatusNotStarted}

	input := []TaskStatusDto{tiedA, second, tiedB, first}
	section := NewTaskSectionDto(uuid.New(), "About you", 1, input)

	assert.Equal(t, []TaskStatusDto{first, second, tiedA, tiedB}, section.Tasks)
	assert.Equal(t, tiedA, input[0], "input should not be reordered")
	assert.False(t, section.IsCompleted())
}

func TestTaskStatusDto_JSON(t *testing.T) {
	task := TaskStatusDto{
		TaskID:      uuid.MustParse("0b7c6bd5-5d0c-4c8b-9f8f-3a1f1cf8d0e2"),
		TaskName:    "Qualifications",
		OrderNumber: 2,
		Status:      constvars.TaskStatusCannotStartYet,
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{"taskId":"0b7c6bd5-5d0c-4c8b-9f8f-3a1f1cf8d0e2","taskName":"Qualifications","orderNumber":2,"status":"CannotStartYet"}`, string(data))

	var decoded TaskStatusDto
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, task, decoded)

	err = json.Unmarshal([]byte(`{"taskId":"0b7c6bd5-5d0c-4c8b-9f8f-3a1f1cf8d0e2","status":"Done"}`), &decoded)
	assert.Error(t, err)
}

func TestValidationResponse(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		response := NewValidationResponse(nil)
		assert.True(t, response.IsValid())
		assert.Empty(t, response.Message)

		data, err := json.Marshal(response)
		require.NoError(t, err)

		var decoded ValidationResponse
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, response, decoded)
	})

	t.Run("Invalid Keeps Order And Owns Its Errors", func(t *testing.T) {
		errs := []ValidationErrorItemDto{
			{Field: "name", Message: "Enter your name"},
			{Field: "name", Message: "Name must be 100 characters or fewer"},
		}
		response := NewValidationResponse(errs)
		errs[0].Message = "changed"

		assert.False(t, response.IsValid())
		assert.Equal(t, constvars.ErrClientValidationFailed, response.Message)
		assert.Equal(t, "Enter your name", response.Errors[0].Message)

		data, err := json.Marshal(response)
		require.NoError(t, err)

		var decoded ValidationResponse
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, response, decoded)
	})
}

func TestUserDto_JSON(t *testing.T) {
	user := UserDto{ID: uuid.New(), Email: "applicant@example.com", Name: "Alex Applicant", Role: "Applicant"}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded UserDto
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, user, decoded)
}

package queries

const (
	GetAllSections = `
		SELECT id, name, order_number, created_date, modified_date, created_by_upn, modified_by_upn
		FROM sections
		ORDER BY order_number
	`

	GetAllStageTasks = `
		SELECT id, section_id, name, order_number, created_date, modified_date, created_by_upn, modified_by_upn
		FROM stage_tasks
		ORDER BY order_number
	`

	GetStageTaskByID = `
		SELECT id, section_id, name, order_number, created_date, modified_date, created_by_upn, modified_by_upn
		FROM stage_tasks
		WHERE id = $1
	`

	GetAllQuestionTypes = `
		SELECT id, name, created_date, modified_date, created_by_upn, modified_by_upn
		FROM question_types
	`
)

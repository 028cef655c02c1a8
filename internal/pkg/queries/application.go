package queries

const (
	GetApplicationByID = `
		SELECT id, user_id, reference, submitted_at, created_date, modified_date, created_by_upn, modified_by_upn
		FROM applications
		WHERE id = $1
	`

	MarkApplicationSubmitted = `
		UPDATE applications
		SET reference = $2, submitted_at = $3, modified_date = $3, modified_by_upn = $4
		WHERE id = $1 AND submitted_at IS NULL
	`

	GetApplicationTasksByApplicationID = `
		SELECT application_id, stage_task_id, status, created_date, modified_date, created_by_upn, modified_by_upn
		FROM application_tasks
		WHERE application_id = $1
	`

	UpsertApplicationTaskStatus = `
		INSERT INTO application_tasks (application_id, stage_task_id, status, created_date, modified_date, created_by_upn, modified_by_upn)
		VALUES ($1, $2, $3, $4, $4, $5, $5)
		ON CONFLICT (application_id, stage_task_id)
		DO UPDATE SET status = EXCLUDED.status, modified_date = EXCLUDED.modified_date, modified_by_upn = EXCLUDED.modified_by_upn
	`
)

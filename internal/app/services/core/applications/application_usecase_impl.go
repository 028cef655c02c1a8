package applications

import (
	"context"
	"fmt"
	"recognition-service/internal/app/config"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/app/models"
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/requests"
	"recognition-service/internal/pkg/dto/responses"
	"recognition-service/internal/pkg/exceptions"
	"recognition-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type applicationUsecase struct {
	ApplicationRepository contracts.ApplicationRepository
	UserRepository        contracts.UserRepository
	SectionUsecase        contracts.SectionUsecase
	NotificationService   contracts.NotificationService
	InternalConfig        *config.InternalConfig
	Now                   func() time.Time
	Log                   *zap.Logger
}

func NewApplicationUsecase(
	applicationRepository contracts.ApplicationRepository,
	userRepository contracts.UserRepository,
	sectionUsecase contracts.SectionUsecase,
	notificationService contracts.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ApplicationUsecase {
	return &applicationUsecase{
		ApplicationRepository: applicationRepository,
		UserRepository:        userRepository,
		SectionUsecase:        sectionUsecase,
		NotificationService:   notificationService,
		InternalConfig:        internalConfig,
		Now:                   time.Now,
		Log:                   logger,
	}
}

func (uc *applicationUsecase) FindByID(ctx context.Context, applicationID uuid.UUID) (*models.Application, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("applicationUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
	)

	if application, ok := ctx.Value(constvars.CONTEXT_APPLICATION_KEY).(*models.Application); ok && application != nil && application.ID == applicationID {
		uc.Log.Info("applicationUsecase.FindByID succeeded from request context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return application, nil
	}

	application, err := uc.ApplicationRepository.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		uc.Log.Info("applicationUsecase.FindByID application not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
		)
		return nil, exceptions.ErrApplicationNotFound(nil, applicationID.String())
	}

	uc.Log.Info("applicationUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return application, nil
}

// FindEditable rejects applications that were already submitted.
func (uc *applicationUsecase) FindEditable(ctx context.Context, applicationID uuid.UUID) (*models.Application, error) {
	application, err := uc.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.IsSubmitted() {
		return nil, exceptions.ErrApplicationAlreadySubmitted(nil, applicationID.String())
	}
	return application, nil
}

func (uc *applicationUsecase) FindTaskSections(ctx context.Context, applicationID uuid.UUID) ([]responses.TaskSectionDto, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("applicationUsecase.FindTaskSections called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
	)

	response, err := uc.buildTaskSections(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("applicationUsecase.FindTaskSections succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSectionCountKey, len(response)),
	)
	return response, nil
}

func (uc *applicationUsecase) UpdateTaskStatus(ctx context.Context, applicationID, taskID uuid.UUID, status constvars.TaskStatus) (*responses.TaskStatusDto, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("applicationUsecase.UpdateTaskStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
		zap.String(constvars.LoggingTaskIDKey, taskID.String()),
		zap.String(constvars.LoggingTaskStatusKey, status.String()),
	)

	if !status.IsValid() {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("unknown task status %q", status))
	}

	_, err := uc.FindEditable(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	catalog, err := uc.SectionUsecase.FindCatalog(ctx)
	if err != nil {
		return nil, err
	}

	task, ok := catalog.FindTask(taskID)
	if !ok {
		uc.Log.Info("applicationUsecase.UpdateTaskStatus task not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTaskIDKey, taskID.String()),
		)
		return nil, exceptions.ErrTaskNotFound(nil, taskID.String())
	}

	applicationTask := &models.ApplicationTask{
		ApplicationID: applicationID,
		StageTaskID:   taskID,
		Status:        status,
	}
	applicationTask.Touch(uc.InternalConfig.App.ServiceUpn, uc.Now().UTC())

	err = uc.ApplicationRepository.UpsertTaskStatus(ctx, applicationTask)
	if err != nil {
		return nil, err
	}

	response := models.ConvertTaskIntoStatusResponse(task, status)

	uc.Log.Info("applicationUsecase.UpdateTaskStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

// Submit marks the application submitted once every task is Completed, then
// notifies the recognition inbox and the applicant.
func (uc *applicationUsecase) Submit(ctx context.Context, applicationID uuid.UUID) (*responses.ApplicationSubmitted, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("applicationUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
	)

	application, err := uc.FindEditable(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	sections, err := uc.buildTaskSections(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	for _, section := range sections {
		if !section.IsCompleted() {
			uc.Log.Info("applicationUsecase.Submit application has incomplete tasks",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSectionIDKey, section.SectionID.String()),
			)
			return nil, exceptions.ErrApplicationIncomplete(nil, applicationID.String())
		}
	}

	inboxTemplateID, err := uc.templateID(constvars.NotificationTemplateApplicationSubmitted)
	if err != nil {
		return nil, err
	}
	receiptTemplateID, err := uc.templateID(constvars.NotificationTemplateSubmissionReceipt)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, application.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrServerProcess(fmt.Errorf("user %s of application %s does not exist", application.UserID, applicationID))
	}

	submittedAt := uc.Now().UTC()
	reference := utils.GenerateApplicationReference(applicationID, submittedAt)

	updated, err := uc.ApplicationRepository.MarkSubmitted(ctx, applicationID, reference, submittedAt, uc.InternalConfig.App.ServiceUpn)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, exceptions.ErrApplicationAlreadySubmitted(nil, applicationID.String())
	}

	personalisation := map[string]string{
		"reference":      reference,
		"name":           user.Name,
		"application_id": applicationID.String(),
		"submitted_at":   submittedAt.Format(time.RFC3339),
	}

	// The submission is committed; publish failures are logged, not returned.
	if inbox := uc.InternalConfig.Notification.RecognitionEmailInbox; inbox != "" {
		uc.notify(ctx, requestID, &requests.NotificationPayload{
			TemplateID:      inboxTemplateID,
			EmailAddress:    inbox,
			Reference:       reference,
			Personalisation: personalisation,
		})
	}

	uc.notify(ctx, requestID, &requests.NotificationPayload{
		TemplateID:      receiptTemplateID,
		EmailAddress:    user.Email,
		Reference:       reference,
		Personalisation: personalisation,
	})

	utils.LogBusinessEvent(uc.Log, "application_submitted", requestID,
		zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
		zap.String(constvars.LoggingReferenceKey, reference),
	)
	uc.Log.Info("applicationUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingApplicationIDKey, applicationID.String()),
	)
	return &responses.ApplicationSubmitted{
		ApplicationID: applicationID,
		Reference:     reference,
		SubmittedAt:   submittedAt,
	}, nil
}

func (uc *applicationUsecase) notify(ctx context.Context, requestID string, payload *requests.NotificationPayload) {
	err := uc.NotificationService.Publish(ctx, payload)
	if err == nil {
		return
	}
	uc.Log.Error("applicationUsecase.Submit failed to publish notification",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReferenceKey, payload.Reference),
		zap.String(constvars.LoggingTemplateIDKey, payload.TemplateID),
		zap.Error(err),
	)
	utils.LogBusinessEvent(uc.Log, "submission_notification_failed", requestID,
		zap.String(constvars.LoggingReferenceKey, payload.Reference),
		zap.String(constvars.LoggingTemplateIDKey, payload.TemplateID),
	)
}

func (uc *applicationUsecase) buildTaskSections(ctx context.Context, applicationID uuid.UUID) ([]responses.TaskSectionDto, error) {
	catalog, err := uc.SectionUsecase.FindCatalog(ctx)
	if err != nil {
		return nil, err
	}

	applicationTasks, err := uc.ApplicationRepository.FindTasks(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	statuses := make(map[uuid.UUID]constvars.TaskStatus, len(applicationTasks))
	for _, task := range applicationTasks {
		statuses[task.StageTaskID] = task.Status
	}

	return models.BuildTaskSections(catalog.Sections, catalog.Tasks, statuses), nil
}

func (uc *applicationUsecase) templateID(templateName string) (string, error) {
	templateID, ok := uc.InternalConfig.Notification.TemplateIDs[templateName]
	if !ok || templateID == "" {
		return "", exceptions.ErrNotificationTemplateNotFound(nil, templateName)
	}
	return templateID, nil
}

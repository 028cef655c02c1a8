package constvars

const (
	MongoCollectionQuestions = "questions"
	MongoCollectionAnswers   = "answers"
)

package enum

type HandlerName int

const (
	HandlerNameImportReviewsHandler HandlerName = iota
	HandlerNameGenerateStaticJsonHandler
	HandlerNameImportFromGoogleHandler
	HandlerNameCardParserHandler
	HandlerNameSearchAssistantHandler
	HandlerNameEngagementHandler
)

func (s HandlerName) String() string {
	return []string{
		"importReviewsHandler",
		"generateStaticJsonHandler",
		"importFromGoogleHandler",
		"cardParserHandler",
		"searchAssistantHandler",
		"engagementHandler",
	}[s]
}

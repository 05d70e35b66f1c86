package store

// Fixed keys used by the demo data layer.  These mirror the names
// the browser client stored under localStorage, so a data directory
// can be inspected key by key.
const (
	KeyToken           = "token"
	KeyProfileImage    = "profileImage"
	KeyValidUsers      = "validUsers"
	KeyMessages        = "portfolioMessages"
	KeyProjects        = "portfolioProjects"
	KeyReplies         = "messageReplies"
	KeyGithubProjects  = "githubProjects"
	KeyGithubFetchedAt = "githubProjectsTimestamp"
)

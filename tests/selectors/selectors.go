package sel

const (
	Logo = ".brand-logo"

	NewPlayerFormName   = "#new-player-form-name"
	NewPlayerFormSubmit = "#new-player-form-submit"

	NewMatchFormA1     = "#new-match-form-a1"
	NewMatchFormA2     = "#new-match-form-a2"
	NewMatchFormB1     = "#new-match-form-b1"
	NewMatchFormB2     = "#new-match-form-b2"
	NewMatchFormGoalsA = "#new-match-form-goals-a"
	NewMatchFormGoalsB = "#new-match-form-goals-b"
	NewMatchFormSubmit = "#new-match-form-submit"

	PlayerListRow     = "#player-list-row"
	PlayerListRowName = "#player-list-row-name"

	SignInFormUsername = "#username-field"
	SignInFormPass     = "#password-field"
	SignInFormSubmit   = "#signin-form-submit"
)

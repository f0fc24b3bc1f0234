package domain

// EarnTask is a promotional task catalog entry. Completion state lives on
// the session, not here.
type EarnTask struct {
	ID       int64  `db:"id" json:"id"`
	Link     string `db:"link" json:"link"`
	Category string `db:"category" json:"category"`
	Reward   int64  `db:"reward" json:"reward"`
}

// Task categories.
const (
	TaskCategoryX         = "x"
	TaskCategoryTelegram  = "telegram"
	TaskCategoryInstagram = "instagram"
	TaskCategoryYouTube   = "youtube"
	TaskCategoryDiscord   = "discord"
	TaskCategoryTikTok    = "tiktok"
	TaskCategoryReddit    = "reddit"
)

package model

// Category is the classified kind of a webhook payload.
type Category string

const (
	CategoryPush         Category = "push"
	CategoryReview       Category = "review"
	CategoryComment      Category = "comment"
	CategoryPullRequest  Category = "pull_request"
	CategoryIssue        Category = "issue"
	CategoryFork         Category = "fork"
	CategoryUnclassified Category = "unclassified"
)

func (c Category) String() string {
	return string(c)
}

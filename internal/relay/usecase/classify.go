package usecase

import "webhook-relay/internal/model"

type rule struct {
	key      string
	category model.Category
}

// rules is evaluated top to bottom. A review comment carries both comment and
// pull_request, and a submitted review carries both review and pull_request,
// so the narrower keys come first.
var rules = []rule{
	{key: "comment", category: model.CategoryComment},
	{key: "review", category: model.CategoryReview},
	{key: "pull_request", category: model.CategoryPullRequest},
	{key: "issue", category: model.CategoryIssue},
	{key: "forkee", category: model.CategoryFork},
	{key: "base_ref", category: model.CategoryPush},
}

func classify(p model.Payload) model.Category {
	for _, r := range rules {
		if p.Has(r.key) {
			return r.category
		}
	}
	return model.CategoryUnclassified
}

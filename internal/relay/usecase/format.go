package usecase

import (
	"fmt"
	"strings"

	"webhook-relay/internal/model"
)

// Suppression reasons reported by formatters.
const (
	reasonBranchDeleted = "ref deleted"
	reasonCIComment     = "ci comment"
	reasonEmptyReview   = "review without body"
)

type formatter struct {
	trimLimit int
	ciMarkers []string
}

// format renders p for category c. An empty text means the formatter
// decided to suppress the payload, and reason says why.
func (f formatter) format(c model.Category, p model.Payload) (text string, reason string) {
	action := p.Action()
	switch c {
	case model.CategoryPullRequest:
		return f.pullRequest(p, action), ""
	case model.CategoryIssue:
		return f.issue(p, action), ""
	case model.CategoryComment:
		return f.comment(p)
	case model.CategoryReview:
		return f.review(p, action)
	case model.CategoryFork:
		return f.fork(p), ""
	case model.CategoryPush:
		return f.push(p)
	default:
		return "", "unclassified"
	}
}

func (f formatter) trim(body string) string {
	return trimMessage(body, f.trimLimit)
}

// headline builds `<icon> <actor> <verb>: "<title>"\n(<url>)`.
func headline(icon model.Icon, actor, verb, title, url string) string {
	return fmt.Sprintf("%s %s %s: \"%s\"\n(%s)", icon, actor, verb, title, url)
}

func withBody(text, body string) string {
	if body == "" {
		return text
	}
	return text + "\n" + body
}

func (f formatter) pullRequest(p model.Payload, action string) string {
	var (
		actor = p.String("sender", "login")
		title = p.String("pull_request", "title")
		url   = p.String("pull_request", "html_url")
	)

	switch action {
	case "closed":
		if p.Bool("pull_request", "merged") {
			return headline(model.IconMerged, actor, "merged a pull request", title, url)
		}
		return headline(model.IconClosed, actor, "closed a pull request", title, url)
	case "edited":
		return headline(model.IconEdited, actor, "edited a pull request", title, url)
	case "synchronize":
		return headline(model.IconUpdated, actor, "updated a pull request", title, url)
	case "ready_for_review":
		return fmt.Sprintf("%s %s's pull request is ready for review: \"%s\"\n(%s)", model.IconReady, actor, title, url)
	default:
		text := headline(model.IconMemo, actor, action+" a pull request", title, url)
		return withBody(text, f.trim(p.String("pull_request", "body")))
	}
}

func (f formatter) issue(p model.Payload, action string) string {
	var (
		actor = p.String("sender", "login")
		title = p.String("issue", "title")
		url   = p.String("issue", "html_url")
	)

	switch action {
	case "closed":
		return headline(model.IconResolved, actor, "closed an issue", title, url)
	case "locked":
		return headline(model.IconLocked, actor, "locked an issue", title, url)
	case "unlocked":
		return headline(model.IconUnlocked, actor, "unlocked an issue", title, url)
	default:
		text := headline(model.IconWarning, actor, action+" an issue", title, url)
		return withBody(text, f.trim(p.String("issue", "body")))
	}
}

func (f formatter) isCIComment(body string) bool {
	body = strings.TrimSpace(body)
	for _, m := range f.ciMarkers {
		if m != "" && strings.HasPrefix(body, m) {
			return true
		}
	}
	return false
}

func (f formatter) comment(p model.Payload) (string, string) {
	raw := p.String("comment", "body")
	if f.isCIComment(raw) {
		return "", reasonCIComment
	}

	var kind, title string
	switch {
	case p.Object("issue") != nil:
		title = p.String("issue", "title")
		kind = "issue"
		if p.HasPath("issue", "pull_request") {
			kind = "pull request"
		}
	case p.Object("pull_request") != nil:
		title = p.String("pull_request", "title")
		kind = "pull request"
	default:
		kind = "commit"
		title = shortSHA(p.String("comment", "commit_id"))
	}

	var (
		actor = p.String("sender", "login")
		url   = p.String("comment", "html_url")
	)
	text := fmt.Sprintf("%s %s commented on %s \"%s\":\n(%s)", model.IconComment, actor, kind, title, url)
	return withBody(text, f.trim(raw)), ""
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func (f formatter) review(p model.Payload, action string) (string, string) {
	var (
		actor = p.String("sender", "login")
		title = p.String("pull_request", "title")
		body  = f.trim(p.String("review", "body"))
		state = strings.ToLower(p.String("review", "state"))
	)
	url := p.String("review", "html_url")
	if url == "" {
		url = p.String("pull_request", "html_url")
	}

	if action == "submitted" {
		switch state {
		case "approved":
			return withBody(headline(model.IconApproved, actor, "approved a pull request", title, url), body), ""
		case "changes_requested":
			return withBody(headline(model.IconChanges, actor, "requested changes to a pull request", title, url), body), ""
		case "commented":
			return withBody(headline(model.IconReviewed, actor, "reviewed a pull request", title, url), body), ""
		}
	}

	if body == "" {
		return "", reasonEmptyReview
	}
	verb := fmt.Sprintf("%s a pull request review (%s)", action, state)
	return withBody(headline(model.IconReview, actor, verb, title, url), body), ""
}

func (f formatter) fork(p model.Payload) string {
	return fmt.Sprintf("%s %s forked: %s\n(%s)",
		model.IconFork,
		p.String("sender", "login"),
		p.String("forkee", "name"),
		p.String("forkee", "html_url"),
	)
}

func (f formatter) push(p model.Payload) (string, string) {
	if p.Bool("deleted") {
		return "", reasonBranchDeleted
	}

	ref := p.String("ref")
	what := "a branch"
	switch {
	case strings.HasPrefix(ref, "refs/heads/"):
		ref = strings.TrimPrefix(ref, "refs/heads/")
	case strings.HasPrefix(ref, "refs/tags/"):
		ref = strings.TrimPrefix(ref, "refs/tags/")
		what = "a tag"
	}

	text := fmt.Sprintf("%s %s pushed commits to %s: %s:%s\n(%s)",
		model.IconPush,
		p.String("sender", "login"),
		what,
		p.String("repository", "full_name"),
		ref,
		p.String("compare"),
	)
	return withBody(text, f.trim(strings.TrimSpace(p.String("head_commit", "message")))), ""
}

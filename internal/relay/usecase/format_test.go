package usecase

import (
	"strings"
	"testing"

	"webhook-relay/internal/model"
	"webhook-relay/internal/relay"
)

func TestFormat(t *testing.T) {
	f := formatter{trimLimit: relay.DefaultTrimLimit, ciMarkers: relay.DefaultCIMarkers}

	tests := []struct {
		name     string
		category model.Category
		raw      string
		want     string
		reason   string
	}{
		{
			name:     "pull request merged",
			category: model.CategoryPullRequest,
			raw:      `{"action":"closed","pull_request":{"merged":true,"title":"t","html_url":"u"},"sender":{"login":"alice"}}`,
			want:     ":merged: alice merged a pull request: \"t\"\n(u)",
		},
		{
			name:     "pull request closed without merge",
			category: model.CategoryPullRequest,
			raw:      `{"action":"closed","pull_request":{"merged":false,"title":"t","html_url":"u"},"sender":{"login":"alice"}}`,
			want:     ":no_entry_sign: alice closed a pull request: \"t\"\n(u)",
		},
		{
			name:     "pull request synchronize",
			category: model.CategoryPullRequest,
			raw:      `{"action":"synchronize","pull_request":{"title":"t","html_url":"u"},"sender":{"login":"alice"}}`,
			want:     ":leftwards_arrow_with_hook: alice updated a pull request: \"t\"\n(u)",
		},
		{
			name:     "pull request ready for review",
			category: model.CategoryPullRequest,
			raw:      `{"action":"ready_for_review","pull_request":{"title":"t","html_url":"u"},"sender":{"login":"alice"}}`,
			want:     ":wave: alice's pull request is ready for review: \"t\"\n(u)",
		},
		{
			name:     "pull request opened with null body",
			category: model.CategoryPullRequest,
			raw:      `{"action":"opened","pull_request":{"title":"t","html_url":"u","body":null},"sender":{"login":"alice"}}`,
			want:     ":memo: alice opened a pull request: \"t\"\n(u)",
		},
		{
			name:     "pull request reopened with body",
			category: model.CategoryPullRequest,
			raw:      `{"action":"reopened","pull_request":{"title":"t","html_url":"u","body":"again"},"sender":{"login":"alice"}}`,
			want:     ":memo: alice reopened a pull request: \"t\"\n(u)\nagain",
		},
		{
			name:     "issue closed",
			category: model.CategoryIssue,
			raw:      `{"action":"closed","issue":{"title":"t","html_url":"u"},"sender":{"login":"bob"}}`,
			want:     ":white_check_mark: bob closed an issue: \"t\"\n(u)",
		},
		{
			name:     "issue locked",
			category: model.CategoryIssue,
			raw:      `{"action":"locked","issue":{"title":"t","html_url":"u"},"sender":{"login":"bob"}}`,
			want:     ":lock: bob locked an issue: \"t\"\n(u)",
		},
		{
			name:     "issue opened",
			category: model.CategoryIssue,
			raw:      `{"action":"opened","issue":{"title":"t","html_url":"u","body":"hello"},"sender":{"login":"bob"}}`,
			want:     ":warning: bob opened an issue: \"t\"\n(u)\nhello",
		},
		{
			name:     "comment on issue",
			category: model.CategoryComment,
			raw:      `{"action":"created","comment":{"body":"lgtm","html_url":"c"},"issue":{"title":"t"},"sender":{"login":"eve"}}`,
			want:     ":speech_balloon: eve commented on issue \"t\":\n(c)\nlgtm",
		},
		{
			name:     "comment on pull request through issue object",
			category: model.CategoryComment,
			raw:      `{"action":"created","comment":{"body":"lgtm","html_url":"c"},"issue":{"title":"t","pull_request":{"url":"x"}},"sender":{"login":"eve"}}`,
			want:     ":speech_balloon: eve commented on pull request \"t\":\n(c)\nlgtm",
		},
		{
			name:     "review comment",
			category: model.CategoryComment,
			raw:      `{"action":"created","comment":{"body":"nit","html_url":"c"},"pull_request":{"title":"t"},"sender":{"login":"eve"}}`,
			want:     ":speech_balloon: eve commented on pull request \"t\":\n(c)\nnit",
		},
		{
			name:     "commit comment",
			category: model.CategoryComment,
			raw:      `{"action":"created","comment":{"body":"why?","html_url":"c","commit_id":"0123456789abcdef"},"sender":{"login":"eve"}}`,
			want:     ":speech_balloon: eve commented on commit \"0123456\":\n(c)\nwhy?",
		},
		{
			name:     "codecov comment",
			category: model.CategoryComment,
			raw:      `{"action":"created","comment":{"body":"## [Codecov](https://codecov.io) Report","html_url":"c"},"issue":{"title":"t"},"sender":{"login":"someone"}}`,
			reason:   reasonCIComment,
		},
		{
			name:     "review approved",
			category: model.CategoryReview,
			raw:      `{"action":"submitted","review":{"state":"approved","body":null,"html_url":"r"},"pull_request":{"title":"t","html_url":"u"},"sender":{"login":"rev"}}`,
			want:     ":thumbsup: rev approved a pull request: \"t\"\n(r)",
		},
		{
			name:     "review changes requested falls back to pull request url",
			category: model.CategoryReview,
			raw:      `{"action":"submitted","review":{"state":"changes_requested","body":"fix it"},"pull_request":{"title":"t","html_url":"u"},"sender":{"login":"rev"}}`,
			want:     ":thinking_face: rev requested changes to a pull request: \"t\"\n(u)\nfix it",
		},
		{
			name:     "review commented",
			category: model.CategoryReview,
			raw:      `{"action":"submitted","review":{"state":"commented","html_url":"r"},"pull_request":{"title":"t"},"sender":{"login":"rev"}}`,
			want:     ":eyes: rev reviewed a pull request: \"t\"\n(r)",
		},
		{
			name:     "review dismissed with body",
			category: model.CategoryReview,
			raw:      `{"action":"dismissed","review":{"state":"dismissed","body":"stale","html_url":"r"},"pull_request":{"title":"t"},"sender":{"login":"rev"}}`,
			want:     ":mag: rev dismissed a pull request review (dismissed): \"t\"\n(r)\nstale",
		},
		{
			name:     "review dismissed without body",
			category: model.CategoryReview,
			raw:      `{"action":"dismissed","review":{"state":"dismissed","body":null},"pull_request":{"title":"t"},"sender":{"login":"rev"}}`,
			reason:   reasonEmptyReview,
		},
		{
			name:     "fork",
			category: model.CategoryFork,
			raw:      `{"forkee":{"html_url":"u","name":"n"},"sender":{"login":"d"}}`,
			want:     ":gemini: d forked: n\n(u)",
		},
		{
			name:     "push to branch with slash",
			category: model.CategoryPush,
			raw:      `{"ref":"refs/heads/feature/x","base_ref":null,"compare":"cmp","repository":{"full_name":"o/r"},"head_commit":{"message":"fix bug\n"},"sender":{"login":"c"}}`,
			want:     ":eight_spoked_asterisk: c pushed commits to a branch: o/r:feature/x\n(cmp)\nfix bug",
		},
		{
			name:     "push tag without head commit",
			category: model.CategoryPush,
			raw:      `{"ref":"refs/tags/v1.0.0","base_ref":"refs/heads/main","compare":"cmp","repository":{"full_name":"o/r"},"head_commit":null,"sender":{"login":"c"}}`,
			want:     ":eight_spoked_asterisk: c pushed commits to a tag: o/r:v1.0.0\n(cmp)",
		},
		{
			name:     "branch deleted",
			category: model.CategoryPush,
			raw:      `{"ref":"refs/heads/main","deleted":true,"base_ref":null,"repository":{"full_name":"r"},"sender":{"login":"c"}}`,
			reason:   reasonBranchDeleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := f.format(tt.category, payload(t, tt.raw))
			if got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
			if reason != tt.reason {
				t.Errorf("reason = %q, want %q", reason, tt.reason)
			}
		})
	}
}

func TestFormatMissingFields(t *testing.T) {
	f := formatter{trimLimit: relay.DefaultTrimLimit}
	categories := []model.Category{
		model.CategoryPullRequest,
		model.CategoryIssue,
		model.CategoryComment,
		model.CategoryFork,
		model.CategoryPush,
	}

	for _, c := range categories {
		t.Run(string(c), func(t *testing.T) {
			got, _ := f.format(c, model.Payload{})
			if got == "" {
				t.Errorf("format(%s) on empty payload should still produce text", c)
			}
		})
	}
}

func TestFormatTrimsLongBodies(t *testing.T) {
	f := formatter{trimLimit: 10}
	raw := `{"action":"opened","issue":{"title":"t","html_url":"u","body":"` + strings.Repeat("x", 50) + `"}}`
	got, _ := f.format(model.CategoryIssue, payload(t, raw))
	if !strings.HasSuffix(got, "\n"+strings.Repeat("x", 10)+"…") {
		t.Errorf("body not trimmed: %q", got)
	}
}

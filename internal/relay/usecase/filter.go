package usecase

import (
	"strings"

	"webhook-relay/internal/model"
	"webhook-relay/internal/relay"
)

type filter struct {
	actions map[string]struct{}
	keys    []string
	senders map[string]struct{}
}

func newFilter(cfg relay.FilterConfig) filter {
	f := filter{
		actions: make(map[string]struct{}, len(cfg.IgnoreActions)),
		keys:    append([]string(nil), cfg.IgnoreKeys...),
		senders: make(map[string]struct{}, len(cfg.IgnoreSenders)),
	}
	for _, a := range cfg.IgnoreActions {
		f.actions[a] = struct{}{}
	}
	for _, s := range cfg.IgnoreSenders {
		f.senders[strings.ToLower(s)] = struct{}{}
	}
	return f
}

// check applies the suppression rules in order and reports the first that matched.
func (f filter) check(p model.Payload) (bool, string) {
	if p.Bool("repository", "private") {
		return true, "private repository"
	}

	if action := p.Action(); action != "" {
		if _, ok := f.actions[action]; ok {
			return true, "ignored action: " + action
		}
	}

	for _, k := range f.keys {
		if p.Has(k) {
			return true, "ignored key: " + k
		}
	}

	if login := p.String("sender", "login"); login != "" {
		if _, ok := f.senders[strings.ToLower(login)]; ok {
			return true, "ignored sender: " + login
		}
	}

	return false, ""
}

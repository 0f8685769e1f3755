package config

import (
	"fmt"
	"regexp"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

var scheduleAtRe = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// NormalizeAndValidate fills defaults, trims list entries, and collects
// every problem rather than stopping at the first.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	if out.App.DataDir == "" {
		out.App.DataDir = "."
	}
	if out.Sheets.Worksheet == "" {
		out.Sheets.Worksheet = "Sheet1"
	}
	if out.Schedule.At == "" {
		out.Schedule.At = "08:00"
	}
	if out.Notify.Type == "" {
		out.Notify.Type = "log"
	}
	if out.HTTP.TimeoutSeconds <= 0 {
		out.HTTP.TimeoutSeconds = 20
	}
	if out.HTTP.RequestsPerSecond <= 0 {
		out.HTTP.RequestsPerSecond = 1.0
	}

	// Skill profile keeps its configured order; blank entries are dropped.
	var skills []string
	for _, s := range out.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	out.Skills = skills
	if len(out.Skills) == 0 {
		res.addWarn("skills is empty; every description token will come out unmatched.")
	}

	if len(out.Portals) == 0 {
		res.addErr("portals is empty: nothing to scrape")
	}
	seen := map[string]bool{}
	for i, p := range out.Portals {
		if strings.TrimSpace(p.Name) == "" {
			res.addErr("portals[%d]: name is required", i)
		}
		if strings.TrimSpace(p.URL) == "" {
			res.addErr("portals[%d] (%s): url is required", i, p.Name)
		}
		if seen[p.Name] {
			res.addErr("duplicate portal name %q", p.Name)
		}
		seen[p.Name] = true

		sel := p.Selectors
		for _, f := range []struct{ name, value string }{
			{"listing", sel.Listing},
			{"title", sel.Title},
			{"company", sel.Company},
			{"location", sel.Location},
			{"description", sel.Description},
			{"post_date", sel.PostDate},
		} {
			if strings.TrimSpace(f.value) == "" {
				res.addErr("portals[%d] (%s): selectors.%s is required", i, p.Name, f.name)
			}
		}
	}

	if strings.TrimSpace(out.Sheets.SpreadsheetID) == "" {
		res.addErr("sheets.spreadsheet_id is required")
	}
	if out.Sheets.CredentialsFile == "" && out.Sheets.KeyringAccount == "" {
		res.addErr("one of sheets.credentials_file or sheets.keyring_account is required")
	}

	if !scheduleAtRe.MatchString(out.Schedule.At) {
		res.addErr("schedule.at %q is not a HH:MM time", out.Schedule.At)
	}

	switch out.Notify.Type {
	case "log":
	case "telegram":
		if strings.TrimSpace(out.Notify.TelegramToken) == "" {
			res.addErr("notify.telegram_token is required when notify.type=telegram")
		}
		if out.Notify.TelegramChatID == 0 {
			res.addErr("notify.telegram_chat_id is required when notify.type=telegram")
		}
	default:
		res.addErr("notify.type %q is not one of log, telegram", out.Notify.Type)
	}

	return out, res
}

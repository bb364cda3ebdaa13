package accounts

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/wallet-accounts-cli/internal/application"
	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

func renderAccounts(accounts []application.AccountView, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Wallet Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(accounts))),
	}

	if len(accounts) == 0 {
		lines = append(lines, s.empty.Render("No accounts yet. Add one with `wa account add`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, account := range accounts {
		lines = append(lines, s.section.Render(renderAccount(account, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccount(view application.AccountView, opts RenderOptions, s styles) string {
	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		avatarStyle(view.Avatar.Color).Render(view.Avatar.Emoji),
		" ",
		s.account.Render(accountTitle(view.Profile.Name, view.Profile.ID)),
	)
	if markers := accountMarkers(view, s); markers != "" {
		title += " " + markers
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		s.faint.Render(fmt.Sprintf("  added %s", formatAdded(view.Profile.CreatedAt, opts.Now))),
	)
}

func accountMarkers(view application.AccountView, s styles) string {
	markers := make([]string, 0, 2)
	if view.Active {
		markers = append(markers, s.active.Render("[active]"))
	}
	if view.Profile.IsPrimary {
		markers = append(markers, s.primary.Render("[primary]"))
	}

	return strings.Join(markers, " ")
}

func renderStatus(status application.Status, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Wallet Status"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(status.State.Accounts))),
	}

	active := s.empty.Render("none")
	if status.Active != nil {
		active = renderAccount(*status.Active, opts, s)
	}
	lines = append(lines,
		s.section.Render(keyValue("active:", active, s)),
		keyValue("session:", sessionLabel(status.Session, s), s),
		keyValue("phase:", s.detail.Render(string(status.State.Phase)), s),
	)
	if status.State.IsSwitching {
		lines = append(lines, s.warning.Render("switch in progress"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCatalog(catalog []domain.Avatar, s styles) string {
	lines := []string{s.title.Render("Avatars")}
	for _, avatar := range catalog {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.key.Render(fmt.Sprintf("%2d", avatar.ID)),
			" ",
			avatarStyle(avatar.Color).Render(avatar.Emoji),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func keyValue(key, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(key), " ", value)
}

func sessionLabel(session domain.Session, s styles) string {
	switch {
	case !session.Initialized:
		return s.warning.Render("none")
	case !session.Unlocked:
		return s.warning.Render(fmt.Sprintf("locked (%s)", session.Name))
	default:
		return s.detail.Render(fmt.Sprintf("unlocked (%s)", session.Name))
	}
}

func accountTitle(name string, id domain.AccountID) string {
	return fmt.Sprintf("%s (%s)", strings.TrimSpace(name), id)
}

func formatAdded(createdAt, now time.Time) string {
	if createdAt.IsZero() {
		return "at an unknown time"
	}
	if now.IsZero() || createdAt.After(now) {
		return "on " + createdAt.Format("02 Jan 2006")
	}

	elapsed := now.Sub(createdAt)
	switch {
	case elapsed < time.Hour:
		return "just now"
	case elapsed < 24*time.Hour:
		return plural(int(math.Floor(elapsed.Hours())), "hour") + " ago"
	case elapsed < 30*24*time.Hour:
		return plural(int(math.Floor(elapsed.Hours()/24)), "day") + " ago"
	default:
		return "on " + createdAt.Format("02 Jan 2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}

	return fmt.Sprintf("%d %ss", n, unit)
}

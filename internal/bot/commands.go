package bot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/models"
	"github.com/shrimpsizemoose/semla/internal/scoring"
)

const adminHelp = `Available commands:
/panel <jobID> - Ranked interview panel for a job
/end <jobID> - End interviews for a job
/assign <appID> <interviewerID...> - Replace assignments for an application
/perms <interviewerID> <w|-> <t|-> <p|-> - Set marking permissions
/help - Show this message

Examples:
/panel 3
/end 3
/assign 17 101 102
/perms 101 w t -`

type commandHandler func(*tgbotapi.Message) error

func (b *Bot) routeAdminCommands(cmd string) (commandHandler, bool) {
	commands := map[string]commandHandler{
		"panel":  b.handlePanel,
		"end":    b.handleEnd,
		"assign": b.handleAssign,
		"perms":  b.handlePerms,
		"help":   b.handleHelp,
		"start":  b.handleHelp,
	}
	handler, found := commands[cmd]
	return handler, found
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if !b.admins[msg.From.ID] {
		b.sendMessage(msg.Chat.ID, "This bot only talks to hiring admins.")
		return
	}

	if !msg.IsCommand() {
		b.sendMessage(msg.Chat.ID, "Send /help for the list of commands.")
		return
	}

	if handler, ok := b.routeAdminCommands(msg.Command()); ok {
		if err := handler(msg); err != nil {
			logger.Error.Printf("Command error: %v", err)
			b.sendMessage(msg.Chat.ID, fmt.Sprintf("Error: %v", err))
		}
		return
	}

	b.sendMessage(msg.Chat.ID, "Send /help for the list of commands.")
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) error {
	return b.sendMessage(msg.Chat.ID, adminHelp)
}

func (b *Bot) handlePanel(msg *tgbotapi.Message) error {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 1 {
		return fmt.Errorf("usage: /panel <jobID>")
	}

	jobID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid job id: %v", err)
	}

	applicants, err := b.store.ListPanelApplications(&jobID)
	if err != nil {
		return fmt.Errorf("failed to fetch panel: %v", err)
	}

	if len(applicants) == 0 {
		return b.sendMessage(msg.Chat.ID, "No applicants in interview stage for this job")
	}

	ids := make([]int64, 0, len(applicants))
	for _, a := range applicants {
		ids = append(ids, a.ID)
	}
	evaluations, err := b.store.ListEvaluations(ids)
	if err != nil {
		return fmt.Errorf("failed to fetch evaluations: %v", err)
	}

	type ranked struct {
		applicant models.Applicant
		totals    scoring.Totals
	}
	rows := make([]ranked, 0, len(applicants))
	for _, a := range applicants {
		rows = append(rows, ranked{applicant: a, totals: scoring.ComputeTotals(evaluations[a.ID])})
	}
	// applicants arrive in creation order, stable sort keeps ties put
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].totals.Total > rows[j].totals.Total
	})

	var out strings.Builder
	out.WriteString(fmt.Sprintf("Panel for job %d:\n\n", jobID))
	for _, row := range rows {
		out.WriteString(fmt.Sprintf("👤 %s [%s]\n🏁 %d/%d\n\n",
			row.applicant.Name,
			row.applicant.Status,
			row.totals.Total,
			row.totals.Max,
		))
	}

	return b.sendMessage(msg.Chat.ID, out.String())
}

func (b *Bot) handleEnd(msg *tgbotapi.Message) error {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 1 {
		return fmt.Errorf("usage: /end <jobID>")
	}

	jobID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid job id: %v", err)
	}

	count, err := b.store.EndInterviews(&jobID)
	if err != nil {
		return fmt.Errorf("failed to end interviews: %v", err)
	}

	return b.sendMessage(msg.Chat.ID, fmt.Sprintf("✅ Ended interviews for job %d: %d applications", jobID, count))
}

func (b *Bot) handleAssign(msg *tgbotapi.Message) error {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 1 {
		return fmt.Errorf("usage: /assign <appID> <interviewerID...>")
	}

	applicationID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid application id: %v", err)
	}

	interviewerIDs := make([]int64, 0, len(args)-1)
	for _, arg := range args[1:] {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid interviewer id %q: %v", arg, err)
		}
		interviewerIDs = append(interviewerIDs, id)
	}

	if err := b.store.ReplaceAssignments(applicationID, interviewerIDs); err != nil {
		return fmt.Errorf("failed to replace assignments: %v", err)
	}

	if len(interviewerIDs) == 0 {
		return b.sendMessage(msg.Chat.ID, fmt.Sprintf("✅ Application %d unassigned from everyone", applicationID))
	}
	return b.sendMessage(msg.Chat.ID, fmt.Sprintf("✅ Application %d assigned to %d interviewers", applicationID, len(interviewerIDs)))
}

func (b *Bot) handlePerms(msg *tgbotapi.Message) error {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 4 {
		return fmt.Errorf("usage: /perms <interviewerID> <w|-> <t|-> <p|->")
	}

	interviewerID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid interviewer id: %v", err)
	}

	perm := models.MarkingPermission{
		InterviewerID: interviewerID,
		WrittenExam:   args[1] == "w",
		TechnicalViva: args[2] == "t",
		Project:       args[3] == "p",
	}

	if err := b.store.SaveMarkingPermission(perm); err != nil {
		return fmt.Errorf("failed to save permissions: %v", err)
	}

	return b.sendMessage(msg.Chat.ID, fmt.Sprintf(
		"✅ Permissions for interviewer %d:\nwritten=%t technical=%t project=%t",
		interviewerID,
		perm.WrittenExam,
		perm.TechnicalViva,
		perm.Project,
	))
}

func (b *Bot) sendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	return err
}

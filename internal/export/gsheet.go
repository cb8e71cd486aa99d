package export

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/go-co-op/gocron"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/app"
	"github.com/shrimpsizemoose/semla/internal/models"
)

const defaultTimestampFormat = "2 January 15:04"

type GSheetExporter struct {
	config    *app.Config
	service   *app.Service
	scheduler *gocron.Scheduler
}

func NewGSheetExporter(config *app.Config, service *app.Service) (*GSheetExporter, error) {
	ctx := context.Background()

	e := &GSheetExporter{
		config:    config,
		service:   service,
		scheduler: gocron.NewScheduler(time.UTC),
	}

	for jobKey, configs := range config.GSheet {
		jobID, err := strconv.ParseInt(jobKey, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid job id %q in gsheet config: %w", jobKey, err)
		}

		for _, cfg := range configs {
			svc, err := sheets.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath))
			if err != nil {
				return nil, fmt.Errorf("failed to create sheets service: %w", err)
			}

			cfg := cfg
			_, err = e.scheduler.Cron(cfg.Schedule).Do(func() {
				if err := e.Export(svc, jobID, &cfg); err != nil {
					logger.Error.Printf("Export failed for job %d: %v", jobID, err)
				}
			})
			if err != nil {
				return nil, fmt.Errorf("failed to schedule export: %w", err)
			}
		}
	}

	e.scheduler.StartAsync()
	return e, nil
}

func (e *GSheetExporter) Stop() {
	e.scheduler.Stop()
}

// Export writes the ranked panel for one job into its sheet: one row per
// applicant, best total first, the way the hiring folks read it.
func (e *GSheetExporter) Export(svc *sheets.Service, jobID int64, cfg *app.GSheetConfig) error {
	exporterUser := &models.User{ID: 0, Name: "exporter", Role: models.RoleAdmin}

	groups, err := e.service.ListPanel(exporterUser, &jobID)
	if err != nil {
		return fmt.Errorf("failed to build panel: %w", err)
	}

	var values [][]interface{}
	for _, group := range groups {
		for _, row := range group.Rows {
			names := make([]string, 0, len(row.Interviewers))
			for _, interviewer := range row.Interviewers {
				names = append(names, interviewer.Name)
			}

			values = append(values, []interface{}{
				row.Applicant.Name,
				string(row.Applicant.Status),
				row.Total,
				row.Max,
				strings.Join(names, ", "),
			})
		}
	}

	writeRange := fmt.Sprintf("%s!%s", cfg.SheetName, cfg.PanelRange)
	_, err = svc.Spreadsheets.Values.Update(cfg.SheetID, writeRange,
		&sheets.ValueRange{Values: values}).ValueInputOption("RAW").Do()
	if err != nil {
		return fmt.Errorf("failed to update panel range: %w", err)
	}

	updateRange := fmt.Sprintf("%s!%s", cfg.SheetName, cfg.TimestampRange)
	_, err = svc.Spreadsheets.Values.Update(cfg.SheetID, updateRange,
		&sheets.ValueRange{Values: [][]interface{}{{e.timestampCell(time.Now())}}}).ValueInputOption("RAW").Do()

	return err
}

// timestampCell renders the "last updated" cell using the configured display
// format, so the sheet matches whatever the hiring team reads elsewhere.
func (e *GSheetExporter) timestampCell(now time.Time) string {
	format := e.config.Display.TimestampFormat
	if format == "" {
		format = defaultTimestampFormat
	}

	cell := fmt.Sprintf("UPD: %s", now.Format(format))
	if len(e.config.EmojiVariants) > 0 {
		cell += " " + e.config.EmojiVariants[rand.Intn(len(e.config.EmojiVariants))]
	}
	return cell
}

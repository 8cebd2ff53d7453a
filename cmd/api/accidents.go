package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"toolhub/internal/domain/accidents"
	"toolhub/internal/mailer"
	"toolhub/internal/params"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreateAccidentReportPayload struct {
	ReporterName     string    `json:"reporter_name" validate:"required,max=120"`
	ReporterEmail    string    `json:"reporter_email" validate:"required,email,max=254"`
	InjuredParty     string    `json:"injured_party" validate:"required,max=120"`
	Location         string    `json:"location" validate:"required,max=200"`
	OccurredAt       time.Time `json:"occurred_at" validate:"required,notfuture"`
	InjuryType       string    `json:"injury_type" validate:"required,max=120"`
	Description      string    `json:"description" validate:"required,max=4000"`
	TreatmentGiven   string    `json:"treatment_given" validate:"max=4000"`
	RiddorReportable bool      `json:"riddor_reportable"`
}

type UpdateReportStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=open reviewed closed"`
}

// CreateAccidentReport godoc
//
//	@Summary		Record an accident
//	@Description	Creates an accident book entry and emails a confirmation to the reporter
//	@Tags			accident-reports
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateAccidentReportPayload	true	"Accident report"
//	@Success		201		{object}	accidents.Report
//	@Failure		400		{object}	error
//	@Router			/accident-reports [post]
func (app *application) createAccidentReportHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateAccidentReportPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	report := &accidents.Report{
		ReporterName:     payload.ReporterName,
		ReporterEmail:    payload.ReporterEmail,
		InjuredParty:     payload.InjuredParty,
		Location:         payload.Location,
		OccurredAt:       payload.OccurredAt,
		InjuryType:       payload.InjuryType,
		Description:      payload.Description,
		TreatmentGiven:   payload.TreatmentGiven,
		RiddorReportable: payload.RiddorReportable,
	}

	created, err := app.store.Accidents.Create(r.Context(), report)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// The entry is already in the book; email failures are logged, never
	// surfaced to the reporter.
	app.background(func() {
		app.sendReportEmails(created)
	})

	if err := app.jsonResponse(w, http.StatusCreated, created); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) sendReportEmails(report *accidents.Report) {
	vars := struct {
		ReportID         string
		ReporterName     string
		InjuredParty     string
		Location         string
		OccurredAt       string
		RiddorReportable bool
	}{
		ReportID:         report.ID.String(),
		ReporterName:     report.ReporterName,
		InjuredParty:     report.InjuredParty,
		Location:         report.Location,
		OccurredAt:       report.OccurredAt.Format("02 Jan 2006 15:04"),
		RiddorReportable: report.RiddorReportable,
	}

	status, err := app.mailer.Send(mailer.AccidentReportTemplate, report.ReporterName, report.ReporterEmail, vars)
	if err != nil {
		app.logger.Errorw("error sending report confirmation email", "report_id", report.ID, "error", err)
	} else {
		app.logger.Infow("confirmation email sent", "report_id", report.ID, "status code", status)
	}

	// RIDDOR-reportable incidents also go to the safety officer.
	if report.RiddorReportable && app.config.mail.safetyEmail != "" {
		status, err = app.mailer.Send(mailer.AccidentEscalatedTemplate, "Safety Officer", app.config.mail.safetyEmail, vars)
		if err != nil {
			app.logger.Errorw("error sending escalation email", "report_id", report.ID, "error", err)
		} else {
			app.logger.Infow("escalation email sent", "report_id", report.ID, "status code", status)
		}
	}
}

// ListAccidentReports godoc
//
//	@Summary		List accident reports
//	@Description	Paginated accident book entries, optionally filtered by status
//	@Tags			accident-reports
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status (open, reviewed, closed)"
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Items per page (max 100)"
//	@Success		200		{object}	map[string]any
//	@Security		BasicAuth
//	@Router			/accident-reports [get]
func (app *application) listAccidentReportsHandler(w http.ResponseWriter, r *http.Request) {
	p := params.ParsePagination(r.URL.Query())

	status := r.URL.Query().Get("status")
	switch status {
	case "", accidents.StatusOpen, accidents.StatusReviewed, accidents.StatusClosed:
	default:
		app.badRequestResponse(w, r, fmt.Errorf("invalid status filter: %q", status))
		return
	}

	reports, total, err := app.store.Accidents.List(r.Context(), status, p.Limit, p.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	p.ComputeMeta(total)

	resp := map[string]any{
		"reports":    reports,
		"pagination": p,
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// GetAccidentReport godoc
//
//	@Summary		Get an accident report
//	@Tags			accident-reports
//	@Produce		json
//	@Param			reportID	path		string	true	"Report ID"
//	@Success		200			{object}	accidents.Report
//	@Failure		404			{object}	error
//	@Security		BasicAuth
//	@Router			/accident-reports/{reportID} [get]
func (app *application) getAccidentReportHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid report ID"))
		return
	}

	report, err := app.store.Accidents.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, accidents.ErrReportNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, report); err != nil {
		app.internalServerError(w, r, err)
	}
}

// UpdateAccidentReportStatus godoc
//
//	@Summary		Update report status
//	@Description	Moves a report forward through open, reviewed, closed
//	@Tags			accident-reports
//	@Accept			json
//	@Produce		json
//	@Param			reportID	path		string						true	"Report ID"
//	@Param			payload		body		UpdateReportStatusPayload	true	"New status"
//	@Success		200			{object}	accidents.Report
//	@Failure		404			{object}	error
//	@Failure		409			{object}	error
//	@Security		BasicAuth
//	@Router			/accident-reports/{reportID}/status [patch]
func (app *application) updateAccidentReportStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "reportID"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid report ID"))
		return
	}

	var payload UpdateReportStatusPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	report, err := app.store.Accidents.UpdateStatus(r.Context(), id, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, accidents.ErrReportNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, accidents.ErrInvalidTransition):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, report); err != nil {
		app.internalServerError(w, r, err)
	}
}

package echoapi

import (
	"net/http"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/gpatracker/core"
	"github.com/trezcool/gpatracker/core/catalog"
	"github.com/trezcool/gpatracker/core/record"
	exportsvc "github.com/trezcool/gpatracker/services/export"
)

type recordApi struct {
	store      *record.Store
	validate   *validator.Validate
	translator ut.Translator
	now        func() time.Time
}

func registerRecordAPI(
	g *echo.Group,
	store *record.Store,
	validate *validator.Validate,
	translator ut.Translator,
	now func() time.Time,
) {
	api := recordApi{
		store:      store,
		validate:   validate,
		translator: translator,
		now:        now,
	}

	g.GET("/record", api.retrieve)
	g.DELETE("/record", api.reset)
	g.GET("/summary", api.summary)
	g.GET("/export", api.export)
	g.POST("/import", api.importRecord)

	// semester endpoints
	sg := g.Group("/semesters/:year/:semester", semesterMiddleware(store))
	sg.GET("", api.semester)
	sg.GET("/available", api.available)
	sg.POST("/courses", api.addCourse)
	sg.DELETE("/courses", api.removeCourse)
	sg.PUT("/grades", api.setGrade)
}

// Handlers

func (api *recordApi) retrieve(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.Record())
}

func (api *recordApi) reset(ctx echo.Context) error {
	if err := api.store.ResetAll(); err != nil {
		return errors.Wrap(err, "resetting record")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *recordApi) summary(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, record.Summarize(api.store.Record()))
}

func (api *recordApi) export(ctx echo.Context) error {
	renderer, err := exportsvc.NewRenderer(ctx.QueryParam("format"))
	if err != nil {
		return core.NewValidationError(err, core.FieldError{
			Field: "format",
			Error: "must be one of " + strings.Join(exportsvc.Formats, ", "),
		})
	}

	doc, err := renderer.Render(record.NewExport(api.store.Record(), api.now()))
	if err != nil {
		return errors.Wrap(err, "rendering export")
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return ctx.Blob(http.StatusOK, doc.ContentType, doc.Content.Bytes())
}

func (api *recordApi) importRecord(ctx echo.Context) error {
	var data ImportRequest
	if err := ctx.Bind(&data); err != nil {
		return core.NewValidationError(errors.Wrap(err, "binding to ImportRequest"),
			core.FieldError{Field: "semestersData", Error: "must be an exported record"})
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.store.Import(data.Record); err != nil {
		return errors.Wrap(err, "importing record")
	}
	return ctx.JSON(http.StatusOK, record.Summarize(api.store.Record()))
}

func (api *recordApi) semester(ctx echo.Context) error {
	return api.semesterResponse(ctx, http.StatusOK)
}

func (api *recordApi) available(ctx echo.Context) error {
	key := getContextSemesterKey(ctx)
	sem, err := api.store.Semester(key)
	if err != nil {
		return errors.Wrap(err, "getting semester")
	}
	taken := make(map[string]bool, len(sem))
	for code := range sem {
		taken[code] = true
	}
	return ctx.JSON(http.StatusOK, api.store.Catalog().Available(key.Year, key.Semester, taken))
}

func (api *recordApi) addCourse(ctx echo.Context) error {
	var data CourseRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CourseRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.store.AddCourseByCode(getContextSemesterKey(ctx), data.Code); err != nil {
		if errors.Cause(err) == catalog.ErrNotFound {
			return core.NewValidationError(err, core.FieldError{Field: "code", Error: err.Error()})
		}
		return errors.Wrap(err, "adding course")
	}
	return api.semesterResponse(ctx, http.StatusOK)
}

func (api *recordApi) removeCourse(ctx echo.Context) error {
	data := CourseRequest{Code: ctx.QueryParam("code")}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.store.RemoveCourse(getContextSemesterKey(ctx), data.Code); err != nil {
		return errors.Wrap(err, "removing course")
	}
	return api.semesterResponse(ctx, http.StatusOK)
}

func (api *recordApi) setGrade(ctx echo.Context) error {
	var data GradeRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GradeRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.store.SetGrade(getContextSemesterKey(ctx), data.Code, data.Grade); err != nil {
		return errors.Wrap(err, "setting grade")
	}
	return api.semesterResponse(ctx, http.StatusOK)
}

func (api *recordApi) semesterResponse(ctx echo.Context, code int) error {
	key := getContextSemesterKey(ctx)
	sem, err := api.store.Semester(key)
	if err != nil {
		return errors.Wrap(err, "getting semester")
	}
	return ctx.JSON(code, record.SummarizeSemester(key, sem))
}

type (
	CourseRequest struct {
		Code string `json:"code" validate:"required,coursecode"`
	}

	GradeRequest struct {
		Code  string      `json:"code" validate:"required,coursecode"`
		Grade null.String `json:"grade" validate:"grade"`
	}

	// ImportRequest is an export bundle sent back.
	ImportRequest struct {
		Record  record.Record `json:"semestersData" validate:"required"`
		Version string        `json:"version"`
	}
)

func (cr *CourseRequest) Validate(validate *validator.Validate) error {
	cr.Code = core.CleanCode(cr.Code)
	return validate.Struct(cr)
}

func (gr *GradeRequest) Validate(validate *validator.Validate) error {
	gr.Code = core.CleanCode(gr.Code)
	if gr.Grade.Valid {
		gr.Grade.String = strings.TrimSpace(gr.Grade.String)
	}
	return validate.Struct(gr)
}

func (ir *ImportRequest) Validate(validate *validator.Validate) error {
	if err := validate.Struct(ir); err != nil {
		return err
	}
	if ir.Version != "" && strings.SplitN(ir.Version, ".", 2)[0] != strings.SplitN(record.SchemaVersion, ".", 2)[0] {
		return core.NewValidationError(nil, core.FieldError{
			Field: "version",
			Error: "unsupported export version " + ir.Version,
		})
	}
	return nil
}

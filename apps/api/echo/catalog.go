package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gpatracker/core"
	"github.com/trezcool/gpatracker/core/catalog"
	"github.com/trezcool/gpatracker/core/grading"
)

type catalogApi struct {
	catalog *catalog.Catalog
}

func registerCatalogAPI(g *echo.Group, cat *catalog.Catalog) {
	api := catalogApi{catalog: cat}

	g.GET("/grades", api.grades)
	g.GET("/catalog", api.query)
	g.GET("/catalog/:code", api.retrieve)
}

// Handlers

func (api *catalogApi) grades(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, grading.DefaultScale)
}

func (api *catalogApi) query(ctx echo.Context) error {
	var filter CatalogFilter
	if err := filter.Bind(ctx); err != nil {
		return err
	}

	if filter.Year == 0 && filter.Semester == 0 {
		return ctx.JSON(http.StatusOK, api.catalog.All())
	}
	return ctx.JSON(http.StatusOK, api.catalog.ForSemester(filter.Year, filter.Semester))
}

func (api *catalogApi) retrieve(ctx echo.Context) error {
	c, err := api.catalog.ByCode(ctx.Param("code"))
	if err != nil {
		if err == catalog.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding course by code")
	}
	return ctx.JSON(http.StatusOK, c)
}

type CatalogFilter struct {
	Year     int
	Semester int
}

// Bind reads the optional ?year=&semester= filter; both or none must be given.
func (f *CatalogFilter) Bind(ctx echo.Context) error {
	year, sem := ctx.QueryParam("year"), ctx.QueryParam("semester")
	if year == "" && sem == "" {
		return nil
	}

	var flds []core.FieldError
	var err error
	if f.Year, err = strconv.Atoi(year); err != nil || f.Year < 1 {
		flds = append(flds, core.FieldError{Field: "year", Error: "must be a positive number"})
	}
	if f.Semester, err = strconv.Atoi(sem); err != nil || f.Semester < 1 {
		flds = append(flds, core.FieldError{Field: "semester", Error: "must be a positive number"})
	}
	if len(flds) > 0 {
		return core.NewValidationError(nil, flds...)
	}
	return nil
}

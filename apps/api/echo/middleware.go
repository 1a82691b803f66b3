package echoapi

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/trezcool/gpatracker/core/record"
)

const (
	ctxSemesterKey = "semesterKey"

	headerStorageWarning = "X-Storage-Warning"
)

func requestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	})
}

// storageWarningMiddleware reports the last failed write to the storage slot in a response header.
// The in-memory record stays authoritative, so the request itself still succeeds.
func storageWarningMiddleware(store *record.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctx.Response().Before(func() {
				if err := store.PersistError(); err != nil {
					ctx.Response().Header().Set(headerStorageWarning, "changes could not be saved: "+err.Error())
				}
			})
			return next(ctx)
		}
	}
}

// semesterMiddleware resolves the :year & :semester params to a semester of the record.
func semesterMiddleware(store *record.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			year, yErr := strconv.Atoi(ctx.Param("year"))
			sem, sErr := strconv.Atoi(ctx.Param("semester"))
			if yErr != nil || sErr != nil {
				return errHttpNotFound
			}
			key := record.SemesterKey{Year: year, Semester: sem}
			if _, err := store.Semester(key); err != nil {
				return err
			}
			ctx.Set(ctxSemesterKey, key)
			return next(ctx)
		}
	}
}

func getContextSemesterKey(ctx echo.Context) record.SemesterKey {
	key, _ := ctx.Get(ctxSemesterKey).(record.SemesterKey)
	return key
}

package helpers

import (
	"fmt"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorBody struct {
	Message   string `json:"message"`
	Conflicts int    `json:"conflicts,omitempty"`
}

type PaginationMeta struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	TotalRows int `json:"total_rows"`
	TotalPage int `json:"total_page"`
}

func RespSuccess(ctx *fiber.Ctx, logger log.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Message: message,
		Data:    data,
	})
}

func RespPagination(ctx *fiber.Ctx, logger log.Logger, data interface{}, meta PaginationMeta, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func RespError(ctx *fiber.Ctx, logger log.Logger, err error) error {
	code := errors.GetCode(err)
	if code == fiber.StatusInternalServerError {
		logger.Error(ctx.UserContext(), fmt.Sprintf("internal error: %v", err))
	}
	return ctx.Status(code).JSON(ErrorBody{
		Message:   err.Error(),
		Conflicts: errors.GetConflicts(err),
	})
}

func BuildPaginationMeta(page, limit, totalRows int) PaginationMeta {
	totalPage := totalRows / limit
	if totalRows%limit != 0 {
		totalPage++
	}
	return PaginationMeta{
		Page:      page,
		Limit:     limit,
		TotalRows: totalRows,
		TotalPage: totalPage,
	}
}

// DurationCalculation returns the remaining duration until target, used when
// enqueueing delayed tasks.
func DurationCalculation(target time.Time) time.Duration {
	return time.Until(target)
}

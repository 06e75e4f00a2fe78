package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/storefront-api/middlewares"
	"github.com/yeremiapane/storefront-api/utils"
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func notFound(entity string, id uint) *CustomError {
	return &CustomError{fmt.Sprintf("%s with ID %d not found.", entity, id)}
}

// paramID reads a positive integer path parameter. On failure it writes a
// 400 response and returns false.
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, &CustomError{fmt.Sprintf("invalid %s %q", name, raw)})
		return 0, false
	}
	return uint(id), true
}

// internalError logs a store fault and answers 500 without leaking it.
func internalError(c *gin.Context, op string, err error) {
	utils.ErrorLogger.WithFields(logrus.Fields{
		"op":         op,
		"request_id": c.GetString(middlewares.RequestIDKey),
	}).Error(err)
	utils.RespondError(c, http.StatusInternalServerError, &CustomError{"internal server error"})
}

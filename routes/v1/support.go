package v1

import (
	"net/http"

	"fieldscore/services"
	"fieldscore/utils/response"

	"github.com/gin-gonic/gin"
)

// SupportRequest is a help request from an archer. Category steers the
// support inbox triage; club is optional because not every user belongs
// to one.
type SupportRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Category string `json:"category" binding:"required,oneof=scoring account club course other"`
	Club     string `json:"club"`
	Subject  string `json:"subject" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// @Summary Submit a support request
// @Description Forward a help request to the support inbox
// @Tags Support
// @Accept json
// @Produce json
// @Param request body SupportRequest true "Support request details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /support [post]
func submitSupportRequest(c *gin.Context) {
	var request SupportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	message := request.Message
	if request.Club != "" {
		message = "Club: " + request.Club + "\n\n" + message
	}

	emailService := services.NewEmailService()
	if err := emailService.SendSupportEmail(request.Name, request.Email, request.Category, request.Subject, message); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to send support email")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Support request submitted"})
}

func RegisterSupportRoutes(r *gin.RouterGroup) {
	r.POST("/support", submitSupportRequest)
}

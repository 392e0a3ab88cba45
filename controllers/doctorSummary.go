package controllers

import (
	"net/http"

	"CarePoint/httperr"
	"CarePoint/services"
	"CarePoint/storage"

	"github.com/gin-gonic/gin"
)

type DoctorSummaryController struct {
	service *services.DoctorSummaryService
	files   *storage.Store
}

func NewDoctorSummaryController(service *services.DoctorSummaryService, files *storage.Store) *DoctorSummaryController {
	return &DoctorSummaryController{service: service, files: files}
}

func (dc *DoctorSummaryController) Register(router *gin.Engine) {
	router.POST("/doctor-summaries", dc.Upload)
	router.GET("/doctor-summaries", dc.ListForPatient)
}

func (dc *DoctorSummaryController) Upload(c *gin.Context) {
	patientID := c.PostForm("patientId")
	file, err := c.FormFile("file")
	if err != nil || patientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient ID and file are required"})
		return
	}

	imageURL, err := dc.files.Save(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload doctor summary"})
		return
	}

	summary, err := dc.service.Attach(c.Request.Context(), patientID, imageURL)
	if err != nil {
		c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (dc *DoctorSummaryController) ListForPatient(c *gin.Context) {
	summaries, err := dc.service.ListForPatient(c.Request.Context(), c.Query("patientId"))
	if err != nil {
		c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

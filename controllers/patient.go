package controllers

import (
	"net/http"

	"CarePoint/httperr"
	"CarePoint/models"
	"CarePoint/services"

	"github.com/gin-gonic/gin"
)

type PatientController struct {
	service *services.PatientService
}

func NewPatientController(service *services.PatientService) *PatientController {
	return &PatientController{service: service}
}

func (pc *PatientController) Register(router *gin.Engine) {
	router.POST("/patients", pc.Create)
	router.GET("/patients", pc.List)
	router.GET("/patients/:patientId", pc.Fetch)
	router.PATCH("/patients/:patientId", pc.Update)
	router.GET("/patients/:patientId/dashboard", pc.Dashboard)
}

func (pc *PatientController) Create(c *gin.Context) {
	var req models.RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patient, err := pc.service.Register(c.Request.Context(), req)
	if err != nil {
		c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (pc *PatientController) Fetch(c *gin.Context) {
	patientID := c.Param("patientId")
	if patientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient ID not provided"})
		return
	}
	patient, err := pc.service.Fetch(c.Request.Context(), patientID)
	if err != nil {
		c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (pc *PatientController) Update(c *gin.Context) {
	patientID := c.Param("patientId")
	var req models.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patient, err := pc.service.Update(c.Request.Context(), patientID, req)
	if err != nil {
		c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (pc *PatientController) List(c *gin.Context) {
	patients, err := pc.service.List(c.Request.Context())
	if err != nil {
		c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (pc *PatientController) Dashboard(c *gin.Context) {
	dashboard, err := pc.service.ViewDashboard(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

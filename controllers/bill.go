package controllers

import (
	"net/http"

	"CarePoint/httperr"
	"CarePoint/models"
	"CarePoint/services"

	"github.com/gin-gonic/gin"
)

type BillController struct {
	service *services.BillService
}

func NewBillController(service *services.BillService) *BillController {
	return &BillController{service: service}
}

func (bc *BillController) Register(router *gin.Engine) {
	router.POST("/bills/:patientId", bc.Create)
	router.GET("/bills/:patientId", bc.ListForPatient)
	router.DELETE("/bills/:patientId", bc.PurgePaid)
	router.PATCH("/bills/update/:billId", bc.Update)
	router.DELETE("/bills/delete-one/:billId", bc.DeleteOne)
}

func (bc *BillController) Create(c *gin.Context) {
	var req models.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bill, err := bc.service.Record(c.Request.Context(), c.Param("patientId"), req)
	if err != nil {
		c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, bill)
}

func (bc *BillController) ListForPatient(c *gin.Context) {
	bills, err := bc.service.ListForPatient(c.Request.Context(), c.Param("patientId"))
	if err != nil {
		c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bills)
}

// PurgePaid deletes every paid bill in the system, not only the addressed
// patient's. The scope is preserved from the original application; the
// nightly job runs the same sweep.
func (bc *BillController) PurgePaid(c *gin.Context) {
	if c.Param("patientId") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient ID required"})
		return
	}
	if _, err := bc.service.PurgePaid(c.Request.Context()); err != nil {
		c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bills deleted"})
}

func (bc *BillController) Update(c *gin.Context) {
	var req models.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bill, err := bc.service.SetPaid(c.Request.Context(), c.Param("billId"), *req.Paid)
	if err != nil {
		c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (bc *BillController) DeleteOne(c *gin.Context) {
	if err := bc.service.Remove(c.Request.Context(), c.Param("billId")); err != nil {
		c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

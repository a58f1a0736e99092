package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"my_taxi/internal/geo"
	"my_taxi/internal/middleware"
	"my_taxi/internal/models"
	"my_taxi/internal/store"
)

// RideController handles the ride lifecycle.
type RideController struct {
	Store store.Store
}

type createRideInput struct {
	Pickup      string  `json:"pickup" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	Fare        float64 `json:"fare"`
	Distance    float64 `json:"distance"`

	// Optional GeoJSON Points (lon/lat). When both are present the trip
	// distance is derived from them and overrides the distance field.
	PickupPoint      json.RawMessage `json:"pickup_point"`
	DestinationPoint json.RawMessage `json:"destination_point"`
}

// Create requests a new ride for the authenticated passenger.
func (rc *RideController) Create(c *gin.Context) {
	passengerID := middleware.UserID(c)

	var input createRideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	distance := input.Distance
	if len(input.PickupPoint) > 0 && len(input.DestinationPoint) > 0 {
		from, err := geo.ParsePoint(input.PickupPoint)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pickup_point: " + err.Error()})
			return
		}
		to, err := geo.ParsePoint(input.DestinationPoint)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid destination_point: " + err.Error()})
			return
		}
		distance = geo.DistanceKm(from, to)
	}

	ride := models.Ride{
		Pickup:      input.Pickup,
		Destination: input.Destination,
		PassengerID: passengerID,
		Status:      models.RideRequested,
		Fare:        input.Fare,
		Distance:    distance,
	}
	if err := rc.Store.CreateRide(&ride); err != nil {
		logrus.WithError(err).Error("could not create ride")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create ride"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ride_id": ride.ID})
}

// UpdateStatus lets a driver move a ride through its lifecycle. The
// driver is assigned in the same update that changes the status.
func (rc *RideController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ride ID"})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidRideStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ride status"})
		return
	}

	driverID := middleware.UserID(c)
	updated, err := rc.Store.UpdateRideStatus(uint(id), body.Status, driverID)
	if err != nil {
		logrus.WithError(err).Error("could not update ride")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update ride"})
		return
	}
	if updated == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "ride not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// List returns every ride. Access policy (admin-only vs open) is
// decided at route registration.
func (rc *RideController) List(c *gin.Context) {
	rides, err := rc.Store.Rides()
	if err != nil {
		logrus.WithError(err).Error("could not list rides")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list rides"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rides})
}

// Delete removes a ride by id.
func (rc *RideController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ride ID"})
		return
	}

	deleted, err := rc.Store.DeleteRide(uint(id))
	if err != nil {
		logrus.WithError(err).Error("could not delete ride")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete ride"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "ride not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

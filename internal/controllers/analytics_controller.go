package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"my_taxi/internal/store"
)

// AnalyticsController serves read-only reporting over users and rides.
type AnalyticsController struct {
	Store store.Store
}

// PassengerStats aggregates rides per user: ride count, fare total and
// mean distance (2 decimals). Users without rides are not listed and
// the output order is unspecified.
func (ac *AnalyticsController) PassengerStats(c *gin.Context) {
	stats, err := ac.Store.PassengerRideStats()
	if err != nil {
		logrus.WithError(err).Error("could not aggregate ride stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not aggregate ride stats"})
		return
	}
	if stats == nil {
		stats = []store.PassengerStats{}
	}
	c.JSON(http.StatusOK, stats)
}

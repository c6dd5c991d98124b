// Package api serves the equilibrium solver over HTTP.
package api

import (
	"expvar"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"

	"github.com/timpalpant/nashsolver/matrixgame"
)

type SolveRequest struct {
	// Row player's payoffs, one row per row action.
	Payoffs [][]float64 `json:"payoffs"`
	// Optional names for the row actions.
	Labels []string `json:"labels,omitempty"`
}

type SolveResponse struct {
	Strategy       []float64          `json:"strategy"`
	ColStrategy    []float64          `json:"column_strategy"`
	Value          float64            `json:"value"`
	Exploitability float64            `json:"exploitability"`
	Iterations     int                `json:"iterations"`
	Probabilities  map[string]float64 `json:"probabilities,omitempty"`
}

func NewRouter(solver *matrixgame.CachedSolver) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"cache_size": solver.Len(),
		})
	})

	r.GET("/debug/vars", gin.WrapH(expvar.Handler()))

	r.POST("/solve", func(c *gin.Context) {
		var req SolveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := solve(solver, &req)
		if err != nil {
			glog.V(1).Infof("Rejected solve request: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, resp)
	})

	return r
}

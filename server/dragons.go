package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/projectdragon/dragon/internal/dragon"
)

type dragonResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      int       `json:"type"`
	TypeName  string    `json:"typeName"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDragonResponse(d dragon.Dragon) dragonResponse {
	return dragonResponse{
		ID:        d.ID,
		Name:      d.Name,
		Type:      d.Type,
		TypeName:  d.TypeName(),
		CreatedAt: d.CreatedAt,
	}
}

// handleDragonList proxies the external dragon API's collection.
func (s *Server) handleDragonList(c echo.Context) error {
	dragons, err := s.dragons.List(c.Request().Context())
	if err != nil {
		c.Logger().Error("dragon API error:", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "failed to fetch dragons"})
	}

	out := make([]dragonResponse, 0, len(dragons))
	for _, d := range dragons {
		out = append(out, toDragonResponse(d))
	}

	return c.JSON(http.StatusOK, out)
}

// handleDragonDetail proxies a single dragon.
func (s *Server) handleDragonDetail(c echo.Context) error {
	d, err := s.dragons.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		c.Logger().Error("dragon API error:", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "failed to fetch dragon"})
	}

	return c.JSON(http.StatusOK, toDragonResponse(*d))
}

// handleDragonDelete forwards a delete to the external dragon API.
func (s *Server) handleDragonDelete(c echo.Context) error {
	if err := s.dragons.Delete(c.Request().Context(), c.Param("id")); err != nil {
		c.Logger().Error("dragon API error:", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "failed to delete dragon"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Dragon deleted successfully."})
}

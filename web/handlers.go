// File: web/handlers.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Solve endpoints. Coefficients arrive as strings, accept float input
// and are truncated to integers; anything non-numeric fails with 422.

package web

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v5"

	"github.com/andrewha/mds2022/quadratic"
)

// infiniteRoots is the sentinel reported when every x solves the equation.
const infiniteRoots = "infinite number of roots"

// coefLimit bounds |a|, |b|, |c| so the discriminant arithmetic cannot
// overflow int64.
const coefLimit = 1_000_000_000

// PlotPoint is one sample of the polynomial for client-side plotting.
type PlotPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SolveResponse is the POST /solve reply: the solution plus plot data.
type SolveResponse struct {
	Roots    []float64   `json:"roots"`
	Infinite bool        `json:"infinite"`
	Title    string      `json:"title"`
	VertexX  float64     `json:"vertex_x"`
	VertexY  float64     `json:"vertex_y"`
	XMin     float64     `json:"x_min"`
	XMax     float64     `json:"x_max"`
	Points   []PlotPoint `json:"points"`
}

// Handler serves the solver endpoints.
type Handler struct {
	cfg    *Config
	logger *slog.Logger
}

// NewHandler returns a handler bound to the given configuration.
func NewHandler(cfg *Config, logger *slog.Logger) *Handler {
	return &Handler{cfg: cfg, logger: logger}
}

// Index serves the coefficient input form.
func (h *Handler) Index(c *echo.Context) error {
	return (*c).HTML(http.StatusOK, indexHTML)
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(c *echo.Context) error {
	return (*c).JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// SolveGet solves for query parameters a, b, c and returns the roots.
// Extra query parameters and non-numeric coefficients fail with 422.
func (h *Handler) SolveGet(c *echo.Context) error {
	if len((*c).Request().URL.Query()) > 3 {
		return (*c).JSON(http.StatusUnprocessableEntity, map[string]string{
			"error":   "too_many_parameters",
			"message": "Too many parameters: a, b, c only expected.",
		})
	}

	a, err := parseCoef((*c).QueryParam("a"))
	if err != nil {
		return badCoefficient(c, err)
	}
	b, err := parseCoef((*c).QueryParam("b"))
	if err != nil {
		return badCoefficient(c, err)
	}
	cc, err := parseCoef((*c).QueryParam("c"))
	if err != nil {
		return badCoefficient(c, err)
	}

	roots, infinite := quadratic.Solve(a, b, cc)
	if infinite {
		return (*c).JSON(http.StatusOK, map[string]any{
			"roots": []string{infiniteRoots},
		})
	}
	if roots == nil {
		roots = []float64{}
	}
	return (*c).JSON(http.StatusOK, map[string]any{"roots": roots})
}

// SolvePost solves for form coefficients coef_a, coef_b, coef_c
// (defaulting to 1, 0, 0) and returns roots plus plot data.
func (h *Handler) SolvePost(c *echo.Context) error {
	req := (*c).Request()
	if err := req.ParseForm(); err != nil {
		return (*c).JSON(http.StatusUnprocessableEntity, map[string]string{
			"error":   "invalid_form",
			"message": err.Error(),
		})
	}
	formValue := func(name, dflt string) string {
		if v := req.PostFormValue(name); v != "" {
			return v
		}
		return dflt
	}

	a, err := parseCoef(formValue("coef_a", "1"))
	if err != nil {
		return badCoefficient(c, err)
	}
	b, err := parseCoef(formValue("coef_b", "0"))
	if err != nil {
		return badCoefficient(c, err)
	}
	cc, err := parseCoef(formValue("coef_c", "0"))
	if err != nil {
		return badCoefficient(c, err)
	}

	roots, infinite := quadratic.Solve(a, b, cc)
	if roots == nil {
		roots = []float64{}
	}

	vertexX := 0.0
	if a != 0 {
		vertexX = float64(-b) / float64(2*a)
	}
	f := func(x float64) float64 {
		return float64(a)*x*x + float64(b)*x + float64(cc)
	}
	xMin, xMax := plotRange(a, b, cc, roots, vertexX)

	samples := h.cfg.PlotSamples
	if samples < 2 {
		samples = 2
	}
	points := make([]PlotPoint, samples)
	step := (xMax - xMin) / float64(samples-1)
	for i := range points {
		x := xMin + step*float64(i)
		points[i] = PlotPoint{X: x, Y: f(x)}
	}

	return (*c).JSON(http.StatusOK, SolveResponse{
		Roots:    roots,
		Infinite: infinite,
		Title:    quadratic.FormatTitle(a, b, cc),
		VertexX:  vertexX,
		VertexY:  f(vertexX),
		XMin:     xMin,
		XMax:     xMax,
		Points:   points,
	})
}

// plotRange picks the x interval for plotting. When the equation has
// fewer than two roots, a companion equation that does cross the x axis
// supplies "pseudo-roots" to scale the interval; if even that fails, the
// range falls back to [-10, 10].
func plotRange(a, b, c int, roots []float64, vertexX float64) (xMin, xMax float64) {
	pseudo := roots
	if len(roots) != 2 {
		pseudo, _ = quadratic.Solve(absInt(a), b, -2*(absInt(c)+1))
	}
	switch len(pseudo) {
	case 2:
		m := math.Max(math.Abs(pseudo[0]), math.Abs(pseudo[1]))
		if m == 0 {
			return -10, 10
		}
		return vertexX - 1.5*m, vertexX + 1.5*m
	case 1:
		m := math.Abs(pseudo[0])
		if m == 0 {
			return -10, 10
		}
		return -1.5 * m, 1.5 * m
	default:
		return -10, 10
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func badCoefficient(c *echo.Context, err error) error {
	return (*c).JSON(http.StatusUnprocessableEntity, map[string]string{
		"error":   "invalid_coefficient",
		"message": err.Error(),
	})
}

// parseCoef converts a coefficient string to int, accepting float input
// and truncating toward zero.
func parseCoef(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("coefficient %q is not a number", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > coefLimit {
		return 0, fmt.Errorf("coefficient %q is out of range", s)
	}
	return int(f), nil
}

// Package api provides the REST API server for easymidi
package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/daviddekleer/EasyMIDI/pkg/instrument"
	"github.com/daviddekleer/EasyMIDI/pkg/midi"
	"github.com/daviddekleer/EasyMIDI/pkg/music"
	"github.com/daviddekleer/EasyMIDI/pkg/theory"
)

// @title EasyMIDI API
// @version 1.0
// @description API for deriving scales, resolving roman-numeral chords and composing MIDI files
// @host localhost:8080
// @BasePath /api/v1

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	r.Use(corsMiddleware())

	r.GET("/health", healthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/scales/:tonic", getScale)
		v1.POST("/chords/resolve", resolveChord)
		v1.POST("/compose", compose)
		v1.GET("/instruments", listInstruments)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "easymidi",
	})
}

// getScale godoc
// @Summary Derive a scale
// @Description Returns the 7 note names of the major or minor scale on a tonic
// @Tags theory
// @Produce json
// @Param tonic path string true "Tonic note name (ex. C, F#, Bb)"
// @Param mode query string false "major (default) or minor"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/v1/scales/{tonic} [get]
func getScale(c *gin.Context) {
	tonic := c.Param("tonic")
	mode := theory.Mode(c.DefaultQuery("mode", string(theory.Major)))

	notes, err := theory.Scale(tonic, mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tonic": tonic,
		"mode":  mode,
		"notes": notes,
	})
}

// chordRequest is the JSON body of a chord resolution request.
type chordRequest struct {
	Symbol     string  `json:"symbol" binding:"required"`
	Key        string  `json:"key"`
	Mode       string  `json:"mode"`
	Octave     int     `json:"octave"`
	Duration   float64 `json:"duration"`
	Velocity   uint8   `json:"velocity"`
	Inversions int     `json:"inversions"`
}

func (r chordRequest) spec() theory.ChordSpec {
	return theory.ChordSpec{
		Symbol:     r.Symbol,
		Key:        r.Key,
		Mode:       theory.Mode(r.Mode),
		Octave:     r.Octave,
		Duration:   r.Duration,
		Velocity:   r.Velocity,
		Inversions: r.Inversions,
	}
}

type noteResponse struct {
	Name   string  `json:"name"`
	Octave int     `json:"octave"`
	Number uint8   `json:"number"`
	Beats  float64 `json:"beats"`
}

// resolveChord godoc
// @Summary Resolve a roman-numeral chord
// @Description Resolves a chord symbol like V7 or Isus4** into concrete notes
// @Tags theory
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /api/v1/chords/resolve [post]
func resolveChord(c *gin.Context) {
	var req chordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chord, err := req.spec().Resolve()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notes := make([]noteResponse, 0, chord.Len())
	for _, n := range chord.Notes() {
		notes = append(notes, noteResponse{
			Name:   n.Name(),
			Octave: n.Octave(),
			Number: n.Number(),
			Beats:  n.Duration() * 4,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol": req.Symbol,
		"notes":  notes,
	})
}

// entryRequest is one sequential track element: exactly one of note,
// chord or roman should be set.
type entryRequest struct {
	Note  *scoreNote    `json:"note,omitempty"`
	Chord []scoreNote   `json:"chord,omitempty"`
	Roman *chordRequest `json:"roman,omitempty"`
}

type scoreNote struct {
	Name     string  `json:"name" binding:"required"`
	Octave   int     `json:"octave"`
	Duration float64 `json:"duration"`
	Velocity uint8   `json:"velocity"`
}

func (s scoreNote) note() (music.Note, error) {
	octave := s.Octave
	if octave == 0 {
		octave = 4
	}
	duration := s.Duration
	if duration == 0 {
		duration = music.Quarter
	}
	velocity := s.Velocity
	if velocity == 0 {
		velocity = music.DefaultVelocity
	}
	return music.NewNote(s.Name, octave, duration, velocity)
}

type trackRequest struct {
	Instrument string         `json:"instrument"`
	Tempo      float64        `json:"tempo"`
	Entries    []entryRequest `json:"entries" binding:"required"`
}

type composeRequest struct {
	Tracks []trackRequest `json:"tracks" binding:"required"`
}

// compose godoc
// @Summary Compose a MIDI file
// @Description Sequences the given tracks of notes, chords and roman-numeral symbols into a .mid file
// @Tags compose
// @Accept json
// @Produce application/octet-stream
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/compose [post]
func compose(c *gin.Context) {
	var req composeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comp := midi.NewComposition(nil)
	for _, tr := range req.Tracks {
		track := music.NewTrack(instrument.Resolve(tr.Instrument), tr.Tempo)
		for _, entry := range tr.Entries {
			e, err := buildEntry(entry)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			track.Add(e)
		}
		comp.AddTrack(track)
	}

	var buf bytes.Buffer
	if _, err := comp.WriteTo(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="output.mid"`)
	c.Data(http.StatusOK, "audio/midi", buf.Bytes())
}

func buildEntry(req entryRequest) (music.Entry, error) {
	switch {
	case req.Note != nil:
		return req.Note.note()
	case len(req.Chord) > 0:
		chord := music.NewChord()
		for _, sn := range req.Chord {
			n, err := sn.note()
			if err != nil {
				return nil, err
			}
			chord.Add(n)
		}
		return chord, nil
	case req.Roman != nil:
		return req.Roman.spec().Resolve()
	default:
		return nil, fmt.Errorf("entry needs a note, chord or roman field")
	}
}

// listInstruments godoc
// @Summary List or match instruments
// @Description Returns all General MIDI program names, or the best match for the q parameter
// @Tags info
// @Produce json
// @Param q query string false "Instrument description to match"
// @Success 200 {object} map[string]any
// @Router /api/v1/instruments [get]
func listInstruments(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		program, matched, exact := instrument.Lookup(q)
		c.JSON(http.StatusOK, gin.H{
			"query":   q,
			"program": program,
			"name":    matched,
			"exact":   exact,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"instruments": instrument.All()})
}

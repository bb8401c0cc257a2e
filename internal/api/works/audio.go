package works

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"inkwell-app/config"
	"inkwell-app/database"
	"inkwell-app/internal/api/respond"
	"inkwell-app/internal/domain/works"

	"github.com/gin-gonic/gin"
)

type GenerateAudioRequest struct {
	VoiceID string `json:"voice_id" binding:"required"`
}

// POST /admin/works/:id/audio
//
// Renders a work's content to speech through the ElevenLabs API and
// stores the mp3 under the uploads dir, keyed by work id.
func GenerateAudio(c *gin.Context) {
	var req GenerateAudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var w works.Work
	if err := database.DB.First(&w, "id = ?", c.Param("id")).Error; err != nil {
		respond.Error(c, err)
		return
	}
	if w.Content == nil || *w.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Work has no content"})
		return
	}

	if config.ELEVENLABS_KEY == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ELEVENLABS_KEY not configured"})
		return
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"text":     *w.Content,
		"model_id": config.ELEVENLABS_MODEL,
		"voice_settings": map[string]float64{
			"stability":        0.5,
			"similarity_boost": 0.5,
		},
	})

	url := fmt.Sprintf("https://api.elevenlabs.io/v1/text-to-speech/%s", req.VoiceID)
	httpReq, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build TTS request"})
		return
	}
	httpReq.Header.Set("Accept", "audio/mpeg")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("xi-api-key", config.ELEVENLABS_KEY)

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Do(httpReq)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "TTS request failed"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fmt.Println("❌ ElevenLabs API error:", string(body))
		c.JSON(http.StatusBadGateway, gin.H{"error": "TTS API error: " + resp.Status})
		return
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read TTS response"})
		return
	}

	if err := os.MkdirAll(config.UPLOADS_DIR, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create uploads dir"})
		return
	}
	path := filepath.Join(config.UPLOADS_DIR, w.ID+".mp3")
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store audio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /uploads/audio/:id
func GetAudio(c *gin.Context) {
	// Base strips any path separators smuggled into the id.
	path := filepath.Join(config.UPLOADS_DIR, filepath.Base(c.Param("id"))+".mp3")
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.Header("Content-Type", "audio/mpeg")
	c.File(path)
}

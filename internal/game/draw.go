package game

import (
	"fmt"
)

// Overlay text shown once the run has ended.
const (
	gameOverText = "Game Over"
	restartText  = "Tap to restart"
)

// draw renders the scene back to front. Callers hold e.mu.
func (e *Engine) draw(c Canvas) {
	for _, tile := range e.background.Tiles() {
		c.Blit(SpriteBackground, tile)
	}

	for _, o := range e.session.Obstacles {
		c.Blit(SpriteObstacle, o.Bounds())
	}

	c.Blit(SpriteBird, e.bird.Bounds())

	hud := e.tuning.HUD
	scoreText := fmt.Sprintf("Score: %d", e.session.Score)
	c.Text(hud.ScoreX, hud.ScoreY, TextHUD, scoreText)

	if e.session.GameOver() {
		y := e.screenH / 2
		e.drawCentered(c, y, TextTitle, gameOverText)
		e.drawCentered(c, y+hud.LineSpacing, TextHUD, scoreText)
		e.drawCentered(c, y+2*hud.LineSpacing, TextHUD, restartText)
	}
}

// drawCentered draws text centered horizontally at the given y.
func (e *Engine) drawCentered(c Canvas, y int, style TextStyle, text string) {
	x := (e.screenW - c.MeasureText(style, text)) / 2
	c.Text(x, y, style, text)
}

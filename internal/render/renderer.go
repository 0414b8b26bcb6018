package render

import (
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	Size() (rows, cols int)
	AddDecoration(col, row int, content string, frames int)
	RenderLoop(period time.Duration, render func(duration time.Duration) bool)
	Clear()
	Fill(row, column int, message string)
}

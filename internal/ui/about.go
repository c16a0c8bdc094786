package ui

import "github.com/lithammer/dedent"

var aboutText = dedent.Dedent(`
	How it Works

	PortionVision helps you visualize serving sizes using objects you
	already know.

	  1. Select Food      Browse South Asian foods to find what you're eating.
	  2. View Portion     See a comparison with a familiar object, like a
	                      deck of cards or a tennis ball.
	  3. Use the Camera   Align the reference outline over your real food to
	                      check your portion.
	  4. Track Intake     Log portions and review daily calorie analytics.

	Pro tip: hold your camera about 12 inches away from the plate for the
	best accuracy.

	Everything is stored locally on this device. No account, no sync, no
	image ever leaves your machine.
`)

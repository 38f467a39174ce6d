package pong

import "fmt"

// AppendScene appends the lines for one frame to dst. ball may be nil.
func AppendScene(dst []Line, match *Match, paddleY [2]float64, ball *Ball) []Line {
	const w, h = ScreenWidth, ScreenHeight
	const edge = BorderWidth / 2

	dst = append(dst,
		Line{X1: w / 2, Y1: 0, X2: w / 2, Y2: h, Width: CenterLineWidth},
		Line{X1: edge, Y1: 0, X2: edge, Y2: h, Width: BorderWidth},
		Line{X1: edge, Y1: h - edge, X2: w - edge, Y2: h - edge, Width: BorderWidth},
		Line{X1: edge, Y1: edge, X2: w - edge, Y2: edge, Width: BorderWidth},
		Line{X1: w - edge, Y1: 0, X2: w - edge, Y2: h, Width: BorderWidth},
	)

	half := match.HalfSize
	dst = append(dst, paddleLine(PaddleInset, paddleY[Left], half))
	if match.TwoPlayer {
		dst = append(dst, paddleLine(w-PaddleInset, paddleY[Right], half))
	} else {
		dst = append(dst, Line{X1: w - PaddleInset, Y1: 0, X2: w - PaddleInset, Y2: h, Width: PaddleThickness})
	}

	if ball != nil {
		dst = append(dst, Line{
			X1: ball.X - BallLength/2, Y1: ball.Y,
			X2: ball.X + BallLength/2, Y2: ball.Y,
			Width: BallLength,
		})
	}

	for i := range match.Scores[Left] {
		x := float64(w/2 - ScoreOffset - ScoreTickSpacing*i)
		dst = append(dst, Line{X1: x, Y1: ScoreTop, X2: x, Y2: ScoreBottom, Width: ScoreTickWidth})
	}
	for i := range match.Scores[Right] {
		x := float64(w/2 + ScoreOffset + ScoreTickSpacing*i)
		dst = append(dst, Line{X1: x, Y1: ScoreTop, X2: x, Y2: ScoreBottom, Width: ScoreTickWidth})
	}
	return dst
}

func paddleLine(x, y, half float64) Line {
	return Line{X1: x, Y1: y + half, X2: x, Y2: y - half, Width: PaddleThickness}
}

// StatusLine is the hint shown while no rally is running.
func StatusLine(match *Match) string {
	return fmt.Sprintf("%s | paddle %g | %d-%d | serve to start",
		modeName(match.TwoPlayer), match.HalfSize, match.Scores[Left], match.Scores[Right])
}

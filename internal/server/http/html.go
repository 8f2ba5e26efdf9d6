package httpserver

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"reversi/internal/reversi"
	"reversi/internal/server/game"
)

const gameCookieName = "reversi_game"

const indexHTML = `<!doctype html>
<html>
<head><title>Reversi</title><style>
table{border-collapse:collapse;}td{width:40px;height:40px;text-align:center;border:1px solid #000;}a{display:block;width:100%;height:100%;text-decoration:none;color:#000;}
</style></head>
<body>
  <h1>Reversi</h1>
  <p>Current: {{.Turn}}</p>
  <p>Black {{.Score.Black}} : {{.Score.White}} White</p>
{{if .GameOver}}  <p><b>{{.Result}}</b></p>
{{else if .CanPass}}  <p>No legal move: <a href="/pass">pass</a></p>
{{end}}  <table>
{{range .Rows}}    <tr>
{{range .}}      <td>{{if .Glyph}}{{.Glyph}}{{else if .Legal}}<a href="/move?square={{.Square}}"></a>{{end}}</td>
{{end}}    </tr>
{{end}}  </table>
  <p><a href="/reset">Reset Game</a> | <a href="/board.svg">SVG board</a></p>
</body>
</html>
`

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// UI serves the browser-facing routes: a server-rendered board page plus
// the move/pass/reset links it emits. The browser session is a uuid
// cookie pointing at a game in the Manager.
type UI struct {
	games *game.Manager
}

func NewUI(games *game.Manager) *UI {
	return &UI{games: games}
}

func (u *UI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/":
		u.handleIndex(w, r)
	case "/move":
		u.handleMove(w, r)
	case "/pass":
		u.handlePass(w, r)
	case "/reset":
		u.handleReset(w, r)
	case "/board.svg":
		u.handleBoardSVG(w, r)
	default:
		http.NotFound(w, r)
	}
}

// currentGame resolves the browser's game, starting a fresh one when the
// cookie is missing or points at a game we no longer know.
func (u *UI) currentGame(w http.ResponseWriter, r *http.Request) *game.GameState {
	if c, err := r.Cookie(gameCookieName); err == nil {
		if g, err := u.games.Get(c.Value); err == nil {
			return g
		}
	}
	g := u.games.NewGame()
	rememberGame(w, g.ID)
	return g
}

func rememberGame(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     gameCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})
}

func (u *UI) handleIndex(w http.ResponseWriter, r *http.Request) {
	g := u.currentGame(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, boardPageFor(g.Pos)); err != nil {
		log.Println("render index error:", err)
	}
}

// handleMove plays the square named in the query. Bad or illegal input is
// logged and ignored; the page only links legal squares anyway.
func (u *UI) handleMove(w http.ResponseWriter, r *http.Request) {
	g := u.currentGame(w, r)

	square := r.URL.Query().Get("square")
	sq, err := reversi.SquareToIndex(square)
	if err != nil {
		log.Printf("move %q rejected: %v", square, err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if _, err := u.games.Apply(g.ID, func(p *reversi.Position) (*reversi.Position, error) {
		return p.ApplyMove(sq)
	}); err != nil {
		log.Printf("move %q rejected: %v", square, err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (u *UI) handlePass(w http.ResponseWriter, r *http.Request) {
	g := u.currentGame(w, r)

	if _, err := u.games.Apply(g.ID, func(p *reversi.Position) (*reversi.Position, error) {
		return p.ApplyPass()
	}); err != nil {
		log.Println("pass rejected:", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// handleReset drops the browser's game entirely; the next index load
// starts a fresh one under a fresh id.
func (u *UI) handleReset(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(gameCookieName); err == nil {
		u.games.Remove(c.Value)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (u *UI) handleBoardSVG(w http.ResponseWriter, r *http.Request) {
	g := u.currentGame(w, r)
	writeBoardSVG(w, g.Pos)
}

type boardCell struct {
	Square string
	Glyph  string
	Legal  bool
}

type boardPage struct {
	Turn     string
	Score    ScoreDTO
	GameOver bool
	Result   string
	CanPass  bool
	Rows     [][]boardCell
}

// boardPageFor flattens a position into template data, rank 8 first.
func boardPageFor(p *reversi.Position) boardPage {
	legal := p.LegalMoves()

	rows := make([][]boardCell, 0, reversi.Ranks)
	for rank := reversi.Ranks - 1; rank >= 0; rank-- {
		row := make([]boardCell, 0, reversi.Files)
		for file := 0; file < reversi.Files; file++ {
			idx := rank*reversi.Files + file
			cell := boardCell{Square: reversi.IndexToSquare(idx)}
			switch p.SquareAt(idx) {
			case reversi.Black:
				cell.Glyph = "●"
			case reversi.White:
				cell.Glyph = "○"
			default:
				cell.Legal = legal&(1<<uint(idx)) != 0
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	page := boardPage{
		Turn:  p.SideToMove.String(),
		Score: scoreOf(p),
		Rows:  rows,
	}
	if p.IsGameOver() {
		page.GameOver = true
		page.Result = resultLine(p)
	} else {
		page.CanPass = p.CanPass()
	}
	return page
}

func resultLine(p *reversi.Position) string {
	b, w := p.Score()
	switch {
	case b > w:
		return fmt.Sprintf("Black wins %d : %d", b, w)
	case w > b:
		return fmt.Sprintf("White wins %d : %d", w, b)
	default:
		return fmt.Sprintf("Draw %d : %d", b, w)
	}
}

package ui

import (
	"context"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	fieldServer = iota
	fieldUser
	fieldPass
	fieldConnect
	fieldCount
)

// ConnectFunc logs in to a server and returns the screen to show next. It
// runs off the game loop.
type ConnectFunc func(ctx context.Context, server, user, pass string) (Screen, error)

type loginResult struct {
	next Screen
	err  error
}

// LoginScreen asks for the server URL and credentials when no token is
// stored.
type LoginScreen struct {
	inputs       [fieldConnect]TextInput
	labels       [fieldConnect]string
	placeholders [fieldConnect]string
	field        int

	connect ConnectFunc
	busy    bool
	done    chan loginResult
	cancel  context.CancelFunc

	errText    string
	errDisplay ErrorDisplay
}

// NewLoginScreen prefills server and user and focuses the first empty field.
func NewLoginScreen(server, user string, connect ConnectFunc) *LoginScreen {
	ls := &LoginScreen{
		connect:      connect,
		done:         make(chan loginResult, 1),
		labels:       [fieldConnect]string{"Server URL", "Username", "Password"},
		placeholders: [fieldConnect]string{"https://jellyfin.example.com", "username", "password"},
	}
	ls.inputs[fieldServer] = NewTextInput(server)
	ls.inputs[fieldUser] = NewTextInput(user)
	ls.inputs[fieldPass].Masked = true

	ls.field = fieldPass
	if user == "" {
		ls.field = fieldUser
	}
	if server == "" {
		ls.field = fieldServer
	}
	return ls
}

func (ls *LoginScreen) Name() string { return "Login" }
func (ls *LoginScreen) OnEnter()     {}

func (ls *LoginScreen) OnExit() {
	if ls.cancel != nil {
		ls.cancel()
		ls.cancel = nil
	}
}

// submit starts a login in the background.
func (ls *LoginScreen) submit() {
	if ls.busy {
		return
	}
	server := strings.TrimSpace(ls.inputs[fieldServer].Text)
	user := strings.TrimSpace(ls.inputs[fieldUser].Text)
	if server == "" || user == "" {
		ls.errText = "Server URL and username are required"
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	ls.cancel = cancel
	ls.busy = true
	ls.errText = ""
	pass := ls.inputs[fieldPass].Text
	go func() {
		next, err := ls.connect(ctx, server, user, pass)
		ls.done <- loginResult{next: next, err: err}
	}()
}

// poll picks up a finished login.
func (ls *LoginScreen) poll() *ScreenTransition {
	select {
	case res := <-ls.done:
		ls.busy = false
		if res.err != nil {
			log.Printf("Login failed: %v", res.err)
			ls.errText = "Login failed: " + res.err.Error()
			ls.inputs[fieldPass].Clear()
			ls.field = fieldPass
			return nil
		}
		return &ScreenTransition{Type: TransitionReplace, Screen: res.next}
	default:
		return nil
	}
}

func (ls *LoginScreen) Update() (*ScreenTransition, error) {
	if tr := ls.poll(); tr != nil {
		return tr, nil
	}
	if ls.busy {
		return nil, nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	if mx, my, clicked := MouseJustClicked(); clicked && ls.errDisplay.HandleClick(mx, my, ls.errText) {
		return nil, nil
	}

	// Navigation
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ls.field = (ls.field + 1) % fieldCount
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ls.field = (ls.field + fieldCount - 1) % fieldCount
	}

	if ls.field < fieldConnect {
		ls.inputs[ls.field].Update()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ls.submit()
	}
	return nil, nil
}

func (ls *LoginScreen) Draw(dst *ebiten.Image) {
	cx := float64(ScreenWidth) / 2
	cy := float64(ScreenHeight)/2 - 100

	DrawTextCentered(dst, "CouchIndex", cx, cy-80, FontSizeTitle+8, ColorPrimary)
	DrawTextCentered(dst, "Connect to your Jellyfin server", cx, cy-40, FontSizeBody, ColorTextSecondary)

	fieldW := float32(400)
	fieldH := float32(44)
	startY := float32(cy)

	for i := range ls.inputs {
		fy := startY + float32(i)*70
		fx := float32(cx) - fieldW/2
		focused := i == ls.field

		DrawText(dst, ls.labels[i], float64(fx), float64(fy-20), FontSizeSmall, ColorTextSecondary)

		bg := ColorSurface
		if focused {
			bg = ColorSurfaceHover
		}
		vector.DrawFilledRect(dst, fx, fy, fieldW, fieldH, bg, false)
		if focused {
			vector.StrokeRect(dst, fx, fy, fieldW, fieldH, 2, ColorFocusBorder, false)
		}

		in := &ls.inputs[i]
		if in.Text == "" && !focused {
			DrawText(dst, ls.placeholders[i], float64(fx+10), float64(fy+12), FontSizeBody, ColorTextMuted)
			continue
		}
		DrawText(dst, in.DisplayText(focused), float64(fx+10), float64(fy+12), FontSizeBody, ColorText)
	}

	// Connect button
	btnY := startY + fieldConnect*70
	btnW := fieldW
	btnH := float32(48)
	bx := float32(cx) - btnW/2

	btnColor := ColorPrimary
	if ls.field == fieldConnect {
		btnColor = ColorPrimaryDark
	}
	vector.DrawFilledRect(dst, bx, btnY, btnW, btnH, btnColor, false)
	if ls.field == fieldConnect {
		vector.StrokeRect(dst, bx, btnY, btnW, btnH, 2, ColorFocusBorder, false)
	}
	label := "Connect"
	if ls.busy {
		label = "Connecting…"
	}
	DrawTextCentered(dst, label, cx, float64(btnY+btnH/2), FontSizeBody, ColorText)

	if ls.errText != "" {
		w, _ := MeasureText(ls.errText, FontSizeBody)
		ls.errDisplay.Draw(dst, ls.errText, cx-w/2, float64(btnY+btnH+30), FontSizeBody)
	} else {
		ls.errDisplay.Draw(dst, "", 0, 0, FontSizeBody)
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/sweetshop/internal/api"
	"github.com/dmitrijs2005/sweetshop/internal/guard"
	"github.com/dmitrijs2005/sweetshop/internal/models"
	"github.com/dmitrijs2005/sweetshop/internal/notify"
	"github.com/dmitrijs2005/sweetshop/internal/session"
)

type fakeSession struct {
	state      session.State
	initCalled bool
	initErr    error

	loginToken string
	loginErr   error

	logoutCalled bool
	logoutErr    error
}

func (f *fakeSession) Initialize(context.Context) error {
	f.initCalled = true
	if f.initErr == nil {
		f.state.IsReady = true
	}
	return f.initErr
}

func (f *fakeSession) Login(_ context.Context, token string) error {
	f.loginToken = token
	if f.loginErr == nil {
		f.state = session.State{
			Identity:        &session.Identity{Subject: "user@example.org"},
			Token:           token,
			IsAuthenticated: true,
			IsReady:         true,
		}
	}
	return f.loginErr
}

func (f *fakeSession) Logout(context.Context) error {
	f.logoutCalled = true
	f.state.Identity = nil
	f.state.Token = ""
	f.state.IsAuthenticated = false
	return f.logoutErr
}

func (f *fakeSession) State() session.State { return f.state }
func (f *fakeSession) Token() string        { return f.state.Token }

type fakeCatalog struct {
	items []models.Sweet

	loadCalls  int
	loadFilter *api.Filter
	loadErr    error

	purchasedID int64
	created     *models.NewSweet
	updatedID   int64
	updatedWith *models.SweetPatch
	deletedID   int64
	restockedID int64
	restockedBy int
	mutationErr error
}

func (f *fakeCatalog) Items() []models.Sweet { return f.items }

func (f *fakeCatalog) Item(id int64) (models.Sweet, bool) {
	for _, s := range f.items {
		if s.ID == id {
			return s, true
		}
	}
	return models.Sweet{}, false
}

func (f *fakeCatalog) Load(_ context.Context, filter *api.Filter) error {
	f.loadCalls++
	f.loadFilter = filter
	return f.loadErr
}

func (f *fakeCatalog) Purchase(_ context.Context, id int64) error {
	f.purchasedID = id
	return f.mutationErr
}

func (f *fakeCatalog) Create(_ context.Context, item models.NewSweet) error {
	f.created = &item
	return f.mutationErr
}

func (f *fakeCatalog) Update(_ context.Context, id int64, patch models.SweetPatch) error {
	f.updatedID = id
	f.updatedWith = &patch
	return f.mutationErr
}

func (f *fakeCatalog) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return f.mutationErr
}

func (f *fakeCatalog) Restock(_ context.Context, id int64, amount int) error {
	f.restockedID = id
	f.restockedBy = amount
	return f.mutationErr
}

type fakeAuthAPI struct {
	loginEmail string
	loginPass  []byte
	token      string
	loginErr   error

	regEmail string
	regPass  []byte
	regErr   error
}

func (f *fakeAuthAPI) Login(_ context.Context, email string, password []byte) (string, error) {
	f.loginEmail, f.loginPass = email, append([]byte(nil), password...)
	return f.token, f.loginErr
}

func (f *fakeAuthAPI) Register(_ context.Context, email string, password []byte) error {
	f.regEmail, f.regPass = email, append([]byte(nil), password...)
	return f.regErr
}

func newTestApp(sess *fakeSession, cat *fakeCatalog, auth *fakeAuthAPI) *App {
	return &App{
		session:  sess,
		guard:    guard.New(sess),
		catalog:  cat,
		auth:     auth,
		notifier: notify.New(time.Hour, nil),
		reader:   bufio.NewReader(strings.NewReader("")),
	}
}

// stubInputs replaces the interactive input seams for the duration of a test.
func stubInputs(t *testing.T, answers []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	var lines []string
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestStatus(t *testing.T) {
	sess := &fakeSession{}
	a := newTestApp(sess, &fakeCatalog{}, &fakeAuthAPI{})

	assert.Equal(t, "(loading)", a.status())

	sess.state = session.State{IsReady: true}
	assert.Equal(t, "", a.status())

	sess.state = session.State{
		Identity:        &session.Identity{Subject: "alice@example.org", IsAdmin: true},
		IsAuthenticated: true,
		IsReady:         true,
	}
	assert.Equal(t, "(alice@example.org admin)", a.status())
}

func TestIsLoggedIn(t *testing.T) {
	sess := &fakeSession{}
	a := newTestApp(sess, &fakeCatalog{}, &fakeAuthAPI{})

	assert.False(t, a.isLoggedIn())

	sess.state = session.State{
		Identity:        &session.Identity{Subject: "u"},
		IsAuthenticated: true,
		IsReady:         true,
	}
	assert.True(t, a.isLoggedIn())
}

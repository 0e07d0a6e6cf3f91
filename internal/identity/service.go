package identity

import (
	"context"
	"errors"
	"sync"

	"alattar_back_end/internal/models"
)

// Type des notifications de changement d'état d'authentification.
type EventType string

const (
	SignedIn       EventType = "SIGNED_IN"
	SignedOut      EventType = "SIGNED_OUT"
	ProfileUpdated EventType = "PROFILE_UPDATED"
)

type Event struct {
	Type   EventType
	UserID string
}

var (
	ErrInvalidCredentials = errors.New("بريد إلكتروني أو كلمة مرور غير صحيحة")
	ErrEmailTaken         = errors.New("حساب بهذا البريد الإلكتروني موجود مسبقاً")
	ErrProfileNotFound    = errors.New("profil introuvable")
)

// Service : interface étroite vers le backend d'identité/profil.
// C'est le jeu de capacités complet consommé par l'application ; tout le
// reste (transport, schéma) appartient au service lui-même. L'interface
// permet de le remplacer ou de le simuler dans les tests.
type Service interface {
	SignUp(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	SignOut(ctx context.Context, userID string) error
	Profile(ctx context.Context, userID string) (*models.UserProfile, error)
	UpsertProfile(ctx context.Context, profile models.UserProfile) error
	// AdminRole retourne le rôle de l'enregistrement admin_users pour cet
	// auth id, ou "" si aucun enregistrement n'existe.
	AdminRole(ctx context.Context, authID string) (string, error)
	// OnAuthStateChange enregistre un observateur notifié à chaque
	// changement d'état. La fonction retournée le désinscrit.
	OnAuthStateChange(fn func(Event)) func()
}

// Broadcaster : fan-out des notifications vers les observateurs inscrits.
// Embarqué par les implémentations de Service.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]func(Event)
	next int
}

func (b *Broadcaster) OnAuthStateChange(fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs == nil {
		b.subs = make(map[int]func(Event))
	}
	id := b.next
	b.next++
	b.subs[id] = fn

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Emit notifie tous les observateurs, dans l'ordre d'inscription non garanti.
func (b *Broadcaster) Emit(ev Event) {
	b.mu.Lock()
	fns := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

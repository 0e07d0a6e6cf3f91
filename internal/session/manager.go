package session

import (
	"context"
	"errors"
	"log"
	"sync"

	"alattar_back_end/internal/identity"
	"alattar_back_end/internal/models"
)

// ErrNotAuthenticated : opération qui exige une session alors qu'il n'y en a
// pas ; l'appelant doit rediriger vers l'inscription.
var ErrNotAuthenticated = errors.New("non authentifié")

// ProfileMirror : cache du profil courant (miroir du localStorage d'origine).
// Peut être nil : le miroir est un confort, pas une dépendance.
type ProfileMirror interface {
	Save(ctx context.Context, p models.UserProfile)
	Delete(ctx context.Context, userID string)
}

// Manager : reflet en mémoire de l'état du service d'identité.
// Il dérive la Session {profil, authentifié, owner} et la re-dérive à chaque
// notification de changement poussée par le service (pas de polling).
type Manager struct {
	svc    identity.Service
	mirror ProfileMirror

	mu       sync.Mutex
	sessions map[string]models.Session
	// gen est incrémenté à chaque déconnexion ; une dérivation commencée
	// avant la déconnexion compare sa génération avant d'appliquer son
	// résultat, pour qu'un fetch lent ne ressuscite pas une session fermée.
	gen     map[string]uint64
	subs    map[int]func(userID string, s models.Session)
	nextSub int

	unsubscribe func()
}

func NewManager(svc identity.Service, mirror ProfileMirror) *Manager {
	m := &Manager{
		svc:      svc,
		mirror:   mirror,
		sessions: make(map[string]models.Session),
		gen:      make(map[string]uint64),
		subs:     make(map[int]func(string, models.Session)),
	}
	m.unsubscribe = svc.OnAuthStateChange(m.handleEvent)
	return m
}

// Close désinscrit le manager des notifications du service d'identité.
func (m *Manager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Subscribe enregistre un observateur des changements de session.
// La fonction retournée le désinscrit.
func (m *Manager) Subscribe(fn func(userID string, s models.Session)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

func (m *Manager) handleEvent(ev identity.Event) {
	switch ev.Type {
	case identity.SignedIn, identity.ProfileUpdated:
		if _, err := m.derive(context.Background(), ev.UserID); err != nil {
			log.Printf("⚠️ Dérivation de session échouée pour %s: %v", ev.UserID, err)
		}
	case identity.SignedOut:
		m.clear(context.Background(), ev.UserID)
	}
}

// Current retourne la session de l'utilisateur, en la dérivant du service
// d'identité si elle n'est pas encore en mémoire (réhydratation).
func (m *Manager) Current(ctx context.Context, userID string) (models.Session, bool) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	m.mu.Unlock()
	if ok {
		return s, true
	}

	s, err := m.derive(ctx, userID)
	if err != nil {
		return models.Session{}, false
	}
	return s, true
}

// derive interroge le service (profil + rôle admin) et pose la session.
// Le résultat n'est appliqué que si aucune déconnexion n'est survenue
// pendant les fetchs.
func (m *Manager) derive(ctx context.Context, userID string) (models.Session, error) {
	m.mu.Lock()
	g := m.gen[userID]
	m.mu.Unlock()

	profile, err := m.svc.Profile(ctx, userID)
	if err != nil {
		return models.Session{}, err
	}
	role, err := m.svc.AdminRole(ctx, userID)
	if err != nil {
		role = "" // l'échec du check admin ne bloque pas la session
	}

	sess := models.Session{
		User:            profile,
		IsAuthenticated: true,
		IsOwner:         role == models.OwnerRole,
	}

	m.mu.Lock()
	if m.gen[userID] != g {
		m.mu.Unlock()
		return models.Session{}, ErrNotAuthenticated // résultat périmé
	}
	m.sessions[userID] = sess
	fns := m.observers()
	m.mu.Unlock()

	if m.mirror != nil {
		m.mirror.Save(ctx, *profile)
	}
	for _, fn := range fns {
		fn(userID, sess)
	}
	return sess, nil
}

// Login délègue au service d'identité. La session n'est pas posée ici : c'est
// la notification SIGNED_IN qui la dérive.
func (m *Manager) Login(ctx context.Context, email, password string) (string, error) {
	return m.svc.SignIn(ctx, email, password)
}

// Logout vide toujours l'état local, même si la déconnexion distante échoue.
func (m *Manager) Logout(ctx context.Context, userID string) {
	m.clear(ctx, userID)
	if err := m.svc.SignOut(ctx, userID); err != nil {
		log.Printf("⚠️ Déconnexion distante échouée pour %s: %v", userID, err)
	}
}

func (m *Manager) clear(ctx context.Context, userID string) {
	m.mu.Lock()
	m.gen[userID]++
	_, had := m.sessions[userID]
	delete(m.sessions, userID)
	fns := m.observers()
	m.mu.Unlock()

	if m.mirror != nil {
		m.mirror.Delete(ctx, userID)
	}
	if had {
		for _, fn := range fns {
			fn(userID, models.Session{})
		}
	}
}

// UpdateProfile exige une session présente, valide le jeu de champs fermé,
// écrit au service, puis fusionne localement après succès seulement.
func (m *Manager) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.Session, error) {
	sess, ok := m.Current(ctx, userID)
	if !ok || !sess.IsAuthenticated || sess.User == nil {
		return models.Session{}, ErrNotAuthenticated
	}

	merged := *sess.User
	update.Apply(&merged)
	if err := merged.Validate(); err != nil {
		return models.Session{}, err
	}

	m.mu.Lock()
	g := m.gen[userID]
	m.mu.Unlock()

	if err := m.svc.UpsertProfile(ctx, merged); err != nil {
		return models.Session{}, err // état local inchangé
	}

	sess.User = &merged
	m.mu.Lock()
	if m.gen[userID] != g {
		m.mu.Unlock()
		return models.Session{}, ErrNotAuthenticated
	}
	m.sessions[userID] = sess
	fns := m.observers()
	m.mu.Unlock()

	if m.mirror != nil {
		m.mirror.Save(ctx, merged)
	}
	for _, fn := range fns {
		fn(userID, sess)
	}
	return sess, nil
}

// observers copie la liste des abonnés ; à appeler sous m.mu.
func (m *Manager) observers() []func(string, models.Session) {
	fns := make([]func(string, models.Session), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	return fns
}

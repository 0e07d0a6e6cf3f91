package identity

import (
	"context"
	"log"

	"alattar_back_end/internal/cache"
	"alattar_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ScyllaService : implémentation de Service sur ScyllaDB.
// Tables : users_by_email (login), profiles (champs du profil),
// admin_users (rôles élevés). Voir scripts/scylladb_init.cql.
type ScyllaService struct {
	Broadcaster
	session *gocql.Session
}

func NewScyllaService(session *gocql.Session) *ScyllaService {
	return &ScyllaService{session: session}
}

// SignUp crée le compte et une ligne de profil vide, puis notifie SIGNED_IN
// (le service distant ouvre la session à l'inscription, comme l'original).
func (s *ScyllaService) SignUp(ctx context.Context, email, password string) (string, error) {
	var existing gocql.UUID
	err := s.session.Query(`SELECT user_id FROM users_by_email WHERE email = ?`, email).
		WithContext(ctx).Scan(&existing)
	if err == nil {
		return "", ErrEmailTaken
	}
	if err != gocql.ErrNotFound {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	userID := gocql.UUID(uuid.New())
	if err := s.session.Query(
		`INSERT INTO users_by_email (email, user_id, password_hash) VALUES (?, ?, ?)`,
		email, userID, string(hash)).WithContext(ctx).Exec(); err != nil {
		return "", err
	}
	if err := s.session.Query(
		`INSERT INTO profiles (id) VALUES (?)`, userID).WithContext(ctx).Exec(); err != nil {
		return "", err
	}

	id := userID.String()
	log.Println("✅ Compte créé:", email)
	s.Emit(Event{Type: SignedIn, UserID: id})
	return id, nil
}

func (s *ScyllaService) SignIn(ctx context.Context, email, password string) (string, error) {
	var userID gocql.UUID
	var hash string
	err := s.session.Query(`SELECT user_id, password_hash FROM users_by_email WHERE email = ?`, email).
		WithContext(ctx).Scan(&userID, &hash)
	if err == gocql.ErrNotFound {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	// le cache évite de refaire bcrypt à chaque login
	if ok, _ := cache.GetPasswordHashFromCache(email, password); !ok {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
			return "", ErrInvalidCredentials
		}
		cache.SetPasswordHashInCache(email, password)
	}

	id := userID.String()
	s.Emit(Event{Type: SignedIn, UserID: id})
	return id, nil
}

func (s *ScyllaService) SignOut(_ context.Context, userID string) error {
	s.Emit(Event{Type: SignedOut, UserID: userID})
	return nil
}

func (s *ScyllaService) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	uid, err := gocql.ParseUUID(userID)
	if err != nil {
		return nil, err
	}

	p := models.UserProfile{ID: userID}
	err = s.session.Query(
		`SELECT full_name, phone_number_1, phone_number_2, address, region,
		        social_media_type, social_media, preferred_contact, delivery_location
		 FROM profiles WHERE id = ?`, uid).WithContext(ctx).Scan(
		&p.FullName, &p.Phone, &p.Phone2, &p.Address, &p.Region,
		&p.SocialMediaType, &p.SocialMedia, &p.PreferredContact, &p.DeliveryLocation)
	if err == gocql.ErrNotFound {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProfile écrit le jeu de champs fermé (INSERT = upsert en CQL).
func (s *ScyllaService) UpsertProfile(ctx context.Context, profile models.UserProfile) error {
	uid, err := gocql.ParseUUID(profile.ID)
	if err != nil {
		return err
	}

	if err := s.session.Query(
		`INSERT INTO profiles (id, full_name, phone_number_1, phone_number_2, address, region,
		                       social_media_type, social_media, preferred_contact, delivery_location)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uid, profile.FullName, profile.Phone, profile.Phone2, profile.Address, profile.Region,
		profile.SocialMediaType, profile.SocialMedia, profile.PreferredContact,
		profile.DeliveryLocation).WithContext(ctx).Exec(); err != nil {
		return err
	}

	s.Emit(Event{Type: ProfileUpdated, UserID: profile.ID})
	return nil
}

func (s *ScyllaService) AdminRole(ctx context.Context, authID string) (string, error) {
	uid, err := gocql.ParseUUID(authID)
	if err != nil {
		return "", err
	}

	var role string
	err = s.session.Query(`SELECT role FROM admin_users WHERE auth_id = ?`, uid).
		WithContext(ctx).Scan(&role)
	if err == gocql.ErrNotFound {
		return "", nil // pas d'enregistrement = utilisateur standard
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

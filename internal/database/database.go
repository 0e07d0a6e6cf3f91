package database

import (
	"context"
	"crypto/tls"
	"log"
	"os"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gocql/gocql"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
)

// --- Clients globaux ---
var (
	Scylla  *gocql.Session
	Redis   *redis.Client
	Elastic *elasticsearch.Client
	MinIO   *minio.Client
)

// ConnectDatabases initialise tous les clients.
// ScyllaDB est obligatoire (comptes et profils) ; Redis, Elasticsearch et
// MinIO sont optionnels et dégradent proprement s'ils manquent.
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := connectScylla(); err != nil {
		log.Fatalf("❌ Échec initialisation ScyllaDB: %v", err)
	}
	connectRedis(ctx)
	connectElastic()
	connectMinIO()

	log.Println("✅ Toutes les bases de données sont connectées")
}

// =============================================
// SCYLLA DB
// =============================================

func connectScylla() error {
	hosts := strings.Split(os.Getenv("SCYLLA_HOSTS"), ",")
	cluster := gocql.NewCluster(hosts...)

	cluster.Keyspace = os.Getenv("SCYLLA_KEYSPACE")
	if cluster.Keyspace == "" {
		cluster.Keyspace = "alattar"
	}
	cluster.Timeout = 5 * time.Second
	cluster.NumConns = 10
	cluster.Consistency = gocql.Quorum

	if username := os.Getenv("SCYLLA_USERNAME"); username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: username,
			Password: os.Getenv("SCYLLA_PASSWORD"),
		}
	}
	if strings.ToLower(os.Getenv("SCYLLA_SSL_ENABLED")) == "true" {
		cluster.SslOpts = &gocql.SslOptions{CaPath: os.Getenv("SCYLLA_SSL_CA_PATH")}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return err
	}
	Scylla = session
	// Note: les tables doivent être créées via scripts/scylladb_init.cql
	log.Println("✅ Connecté à ScyllaDB, keyspace", cluster.Keyspace)
	return nil
}

// =============================================
// REDIS (paniers, miroir profil, cache auth)
// =============================================

func connectRedis(ctx context.Context) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR manquant — paniers en mémoire uniquement")
		return
	}

	opts := &redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	}
	if strings.ToLower(os.Getenv("REDIS_TLS")) == "true" {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("⚠️ Redis injoignable:", err)
		return
	}
	Redis = client
	log.Println("✅ Connecté à Redis:", addr)
}

// =============================================
// ELASTICSEARCH (recherche catalogue)
// =============================================

func connectElastic() {
	addr := os.Getenv("ELASTIC_URL")
	if addr == "" {
		log.Println("⚠️ ELASTIC_URL manquant — recherche en mémoire uniquement")
		return
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{addr},
		Username:  os.Getenv("ELASTIC_USERNAME"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	})
	if err != nil {
		log.Println("⚠️ Elasticsearch non configuré:", err)
		return
	}
	Elastic = client
	log.Println("✅ Client Elasticsearch prêt:", addr)
}

// =============================================
// MINIO (images produits)
// =============================================

func connectMinIO() {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️ MINIO_ENDPOINT manquant — upload d'images désactivé")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: strings.ToLower(os.Getenv("MINIO_SECURE")) == "true",
	})
	if err != nil {
		log.Println("⚠️ MinIO non configuré:", err)
		return
	}
	MinIO = client
	log.Println("✅ Connecté à MinIO:", endpoint)
}

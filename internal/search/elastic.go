package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"alattar_back_end/internal/catalog"
	"alattar_back_end/internal/database"
	"alattar_back_end/internal/models"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const productIndex = "products"

//
// --- INDEXATION DANS ELASTICSEARCH ---
//

// IndexCatalog indexe le catalogue statique au démarrage.
// Sans client Elastic, la recherche retombe sur le filtre en mémoire.
func IndexCatalog(ctx context.Context) {
	if database.Elastic == nil {
		log.Println("⚠️ Elastic non initialisé, catalogue non indexé")
		return
	}

	for _, p := range catalog.Products() {
		data, _ := json.Marshal(p)
		req := esapi.IndexRequest{
			Index:      productIndex,
			DocumentID: strconv.Itoa(p.ID),
			Body:       bytes.NewReader(data),
		}

		res, err := req.Do(ctx, database.Elastic)
		if err != nil {
			log.Println("❌ Erreur envoi Elastic:", err)
			return
		}
		if res.IsError() {
			log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", p.Name, res.String())
		}
		res.Body.Close()
	}
	log.Println("✅ Catalogue indexé dans Elasticsearch")
}

//
// --- RECHERCHE ---
//

// Products cherche dans l'index par nom, description ou catégorie ;
// si Elastic est absent ou en erreur, filtre le catalogue en mémoire.
func Products(ctx context.Context, query, category string) []models.Product {
	if database.Elastic == nil || query == "" {
		return catalog.Filter(query, category)
	}

	hits, err := searchElastic(ctx, query)
	if err != nil {
		log.Println("⚠️ Recherche Elastic échouée, repli en mémoire:", err)
		return catalog.Filter(query, category)
	}

	out := []models.Product{}
	for _, p := range hits {
		if category != "" && category != catalog.AllCategory && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

func searchElastic(ctx context.Context, query string) ([]models.Product, error) {
	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description", "category"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{productIndex},
		Body:  &buf,
	}
	res, err := req.Do(ctx, database.Elastic)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elastic: %s", res.String())
	}

	var body struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(body.Hits.Hits))
	for _, h := range body.Hits.Hits {
		products = append(products, h.Source)
	}
	return products, nil
}

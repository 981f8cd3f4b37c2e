// internal/database/seed.go
package database

import (
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/medhub/medhub-backend/internal/models"
)

// advisory lock key for the one-time seed; any constant works as long as
// every instance uses the same one
const seedLockKey = 810209

// Seed populates the bootstrap dataset on first run. Guarded on the
// categories table being empty, so repeat invocations are no-ops. On
// Postgres the whole routine holds an advisory transaction lock so
// concurrently starting instances cannot double-seed.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", seedLockKey).Error; err != nil {
				return fmt.Errorf("failed to take seed lock: %w", err)
			}
		}

		var categoryCount int64
		if err := tx.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
			return fmt.Errorf("failed to check existing categories: %w", err)
		}
		if categoryCount > 0 {
			log.Println("Database already seeded")
			return nil
		}

		log.Println("Seeding database...")
		return seedAll(tx)
	})
}

func seedAll(tx *gorm.DB) error {
	categories := []models.Category{
		{Name: "Radiology AI", Slug: "radiology-ai", Description: "AI tools for medical imaging analysis", Icon: "scan"},
		{Name: "Clinical Decision Support", Slug: "cds", Description: "Tools to assist clinical decision making", Icon: "stethoscope"},
		{Name: "Revenue Cycle Management", Slug: "rcm", Description: "AI for billing and coding", Icon: "receipt"},
		{Name: "Patient Engagement", Slug: "patient-engagement", Description: "Chatbots and patient portals", Icon: "users"},
	}
	if err := tx.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	topics := []models.Topic{
		{Name: "Medical Imaging", Slug: "medical-imaging", Description: "CT, MRI and X-ray analysis software", CategoryID: &categories[0].ID, Icon: "image", OfferingCount: 2},
		{Name: "Clinical NLP", Slug: "clinical-nlp", Description: "Natural language processing for clinical text", CategoryID: &categories[1].ID, Icon: "text", OfferingCount: 1},
		{Name: "Medical Coding", Slug: "medical-coding", Description: "Automated ICD and CPT coding", CategoryID: &categories[2].ID, Icon: "hash", OfferingCount: 1},
		{Name: "Patient Portals", Slug: "patient-portals", Description: "Self-service portals and messaging", CategoryID: &categories[3].ID, Icon: "door-open", OfferingCount: 1},
	}
	if err := tx.Create(&topics).Error; err != nil {
		return fmt.Errorf("failed to seed topics: %w", err)
	}

	products := []models.Product{
		{
			Name:             "RadAI Pro",
			Slug:             "radai-pro",
			Description:      "Advanced AI for radiology reporting and analysis.",
			ShortDescription: "Automated radiology reports.",
			VendorName:       "RadAI Inc.",
			CategoryID:       &categories[0].ID,
			PricingTier:      string(models.PricingTierEnterprise),
			IntegrationType:  "HL7/FHIR",
			DeploymentType:   "Cloud",
			IsAiCapable:      true,
			AiCapabilities:   pq.StringArray{"Computer Vision", "NLP"},
			Rating:           40,
			ReviewCount:      12,
		},
		{
			Name:             "MediCode AI",
			Slug:             "medicode-ai",
			Description:      "Automated medical coding using deep learning.",
			ShortDescription: "AI for medical coding.",
			VendorName:       "MediCode Systems",
			CategoryID:       &categories[2].ID,
			PricingTier:      string(models.PricingTierPaid),
			IntegrationType:  "API",
			DeploymentType:   "Hybrid",
			IsAiCapable:      true,
			AiCapabilities:   pq.StringArray{"NLP"},
			Rating:           50,
			ReviewCount:      8,
		},
		{
			Name:             "PatientConnect",
			Slug:             "patient-connect",
			Description:      "AI-driven patient engagement platform.",
			ShortDescription: "Engage patients automatically.",
			VendorName:       "Connect Health",
			CategoryID:       &categories[3].ID,
			PricingTier:      string(models.PricingTierFreemium),
			IntegrationType:  "Native",
			DeploymentType:   "Cloud",
			IsAiCapable:      true,
			AiCapabilities:   pq.StringArray{"Chatbot"},
			Rating:           30,
			ReviewCount:      25,
		},
	}
	if err := tx.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	links := []models.ProductTopic{
		{ProductID: products[0].ID, TopicID: topics[0].ID},
		{ProductID: products[1].ID, TopicID: topics[1].ID},
		{ProductID: products[1].ID, TopicID: topics[2].ID},
		{ProductID: products[2].ID, TopicID: topics[3].ID},
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("failed to seed product topics: %w", err)
	}

	stats := []models.Stat{
		{Key: "products", Value: 320, Label: "Listed products"},
		{Key: "vendors", Value: 140, Label: "Verified vendors"},
		{Key: "reviews", Value: 4800, Label: "User reviews"},
		{Key: "organizations", Value: 900, Label: "Healthcare organizations"},
	}
	if err := tx.Create(&stats).Error; err != nil {
		return fmt.Errorf("failed to seed stats: %w", err)
	}

	now := time.Now()
	articles := []models.Article{
		{Title: "Choosing a radiology AI vendor", Slug: "choosing-radiology-ai-vendor", Excerpt: "What to look for when evaluating imaging AI.", Type: "guide", PublishedAt: now.AddDate(0, 0, -30)},
		{Title: "FHIR integration checklist", Slug: "fhir-integration-checklist", Excerpt: "A practical checklist for FHIR-based integrations.", Type: "guide", PublishedAt: now.AddDate(0, 0, -14)},
		{Title: "This month in health tech", Slug: "this-month-in-health-tech", Excerpt: "Funding rounds, launches and regulatory news.", Type: "news", PublishedAt: now.AddDate(0, 0, -2)},
	}
	if err := tx.Create(&articles).Error; err != nil {
		return fmt.Errorf("failed to seed articles: %w", err)
	}

	events := []models.Event{
		{Title: "HIMSS Global Health Conference", Location: "Las Vegas, NV", URL: "https://www.himss.org/event", StartsAt: now.AddDate(0, 2, 0)},
		{Title: "Health AI Summit", Location: "Boston, MA", URL: "https://example.com/health-ai-summit", StartsAt: now.AddDate(0, 4, 0)},
	}
	if err := tx.Create(&events).Error; err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"

	"github.com/vindlokaal/businessprofiles/backend/internal/adapters/search"
	"github.com/vindlokaal/businessprofiles/backend/internal/audit"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
	"github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/clients/postgres"
	"github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/clients/typesense"
	"github.com/vindlokaal/businessprofiles/backend/pkg/config"
)

type seedBusiness struct {
	profile    entities.BusinessProfile
	services   []string
	highlights []string
	faq        []entities.FAQItem
	gallery    []entities.GalleryImage
	hours      []entities.OpeningHours
	reviews    []entities.Review
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	var searchRepo *search.TypesenseAdapter
	if err == nil {
		searchRepo = search.NewTypesenseAdapter(tsClient)
		if err := searchRepo.InitSchema(context.Background()); err != nil {
			log.Printf("Failed to init Typesense schema: %v", err)
		}
	}

	ctx := context.Background()
	db := goqu.New("postgres", pgClient.DB())

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				score_snapshots,
				business_reviews,
				business_opening_hours,
				business_gallery,
				business_faq,
				business_highlights,
				business_services,
				businesses
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	for _, seed := range seedBusinesses() {
		if err := insertBusiness(ctx, db, seed); err != nil {
			log.Printf("Failed to seed business %s: %v", seed.profile.Name, err)
			continue
		}
		log.Printf("Seeded business %s", seed.profile.Name)

		if searchRepo != nil {
			result := audit.Evaluate(&seed.profile)
			if err := searchRepo.Index(ctx, &seed.profile, result.OverallScore); err != nil {
				log.Printf("Failed to index business %s: %v", seed.profile.Name, err)
			}
		}
	}

	log.Println("Seeding complete")
}

func insertBusiness(ctx context.Context, db *goqu.Database, seed seedBusiness) error {
	p := seed.profile
	record := goqu.Record{
		"id":                p.ID,
		"name":              p.Name,
		"slug":              p.Slug,
		"category":          p.Category,
		"seo_title":         p.SeoTitle,
		"seo_description":   p.SeoDescription,
		"short_description": p.ShortDescription,
		"long_description":  p.LongDescription,
		"local_text":        p.LocalText,
		"service_area":      p.ServiceArea,
		"phone_number":      p.PhoneNumber,
		"email":             p.Email,
		"website":           p.Website,
		"street":            p.Address.Street,
		"postal_code":       p.Address.PostalCode,
		"city":              p.Address.City,
		"logo_url":          p.LogoURL,
		"cover_image_url":   p.CoverImageURL,
		"rating":            p.Rating,
		"review_count":      p.ReviewCount,
		"is_active":         p.IsActive,
		"created_at":        p.CreatedAt,
		"updated_at":        p.UpdatedAt,
	}
	if _, err := db.Insert("businesses").Rows(record).Executor().ExecContext(ctx); err != nil {
		return err
	}

	for i, name := range seed.services {
		_, err := db.Insert("business_services").Rows(goqu.Record{
			"business_id": p.ID, "name": name, "position": i,
		}).Executor().ExecContext(ctx)
		if err != nil {
			return err
		}
	}

	for i, name := range seed.highlights {
		_, err := db.Insert("business_highlights").Rows(goqu.Record{
			"business_id": p.ID, "name": name, "position": i,
		}).Executor().ExecContext(ctx)
		if err != nil {
			return err
		}
	}

	for i, item := range seed.faq {
		_, err := db.Insert("business_faq").Rows(goqu.Record{
			"business_id": p.ID, "question": item.Question, "answer": item.Answer, "position": i,
		}).Executor().ExecContext(ctx)
		if err != nil {
			return err
		}
	}

	for i, image := range seed.gallery {
		_, err := db.Insert("business_gallery").Rows(goqu.Record{
			"business_id": p.ID, "url": image.URL, "alt_text": image.AltText, "position": i,
		}).Executor().ExecContext(ctx)
		if err != nil {
			return err
		}
	}

	for _, day := range seed.hours {
		_, err := db.Insert("business_opening_hours").Rows(goqu.Record{
			"business_id": p.ID, "day": day.Day, "open_time": day.Open, "close_time": day.Close, "closed": day.Closed,
		}).Executor().ExecContext(ctx)
		if err != nil {
			return err
		}
	}

	for _, review := range seed.reviews {
		_, err := db.Insert("business_reviews").Rows(goqu.Record{
			"business_id":    p.ID,
			"author":         review.Author,
			"rating":         review.Rating,
			"text":           review.Text,
			"owner_response": review.OwnerResponse,
			"created_at":     review.CreatedAt,
		}).Executor().ExecContext(ctx)
		if err != nil {
			return err
		}
	}

	return nil
}

func seedBusinesses() []seedBusiness {
	now := time.Now()

	weekdays := []entities.OpeningHours{
		{Day: "monday", Open: "09:00", Close: "17:30"},
		{Day: "tuesday", Open: "09:00", Close: "17:30"},
		{Day: "wednesday", Open: "09:00", Close: "17:30"},
		{Day: "thursday", Open: "09:00", Close: "21:00"},
		{Day: "friday", Open: "09:00", Close: "17:30"},
		{Day: "saturday", Open: "10:00", Close: "16:00"},
		{Day: "sunday", Closed: true},
	}

	return []seedBusiness{
		{
			profile: entities.BusinessProfile{
				ID:               uuid.New().String(),
				Name:             "Fietsenmaker De Ketting",
				Slug:             "fietsenmaker-de-ketting",
				Category:         "Fietsenwinkel",
				SeoTitle:         "Fietsenmaker De Ketting | Fietsreparatie in Utrecht",
				SeoDescription:   "Fietsenmaker De Ketting repareert stadsfietsen, racefietsen en e-bikes in het centrum van Utrecht. Vandaag gebracht, morgen klaar. Maak direct een afspraak online.",
				ShortDescription: "De Ketting is al twintig jaar het vertrouwde adres voor fietsreparatie en onderhoud in het centrum van Utrecht. Van lekke band tot complete revisie van uw e-bike, onze monteurs staan dagelijks voor u klaar.",
				LongDescription:  "Fietsenmaker De Ketting werd in 2004 opgericht aan de Oudegracht en is uitgegroeid tot een begrip in Utrecht. Onze werkplaats behandelt alles van eenvoudige bandenplak tot volledige revisies van elektrische fietsen. Wij werken uitsluitend met originele onderdelen en geven zes maanden garantie op elke reparatie. Naast reparatie verkopen wij een zorgvuldig samengestelde collectie stadsfietsen en bakfietsen van Nederlandse merken. Klanten kunnen hun fiets voor negen uur brengen en meestal dezelfde dag nog ophalen. Voor zakelijke klanten bieden wij onderhoudscontracten met haal- en brengservice binnen de singels. Ons team van vier monteurs is gecertificeerd voor alle gangbare e-bike systemen waaronder Bosch en Shimano. Loop gerust binnen voor een vrijblijvende prijsopgave of plan online een afspraak.",
				LocalText:        "Onze werkplaats zit aan de Oudegracht in hartje Utrecht, op twee minuten lopen van de Dom.",
				ServiceArea:      "Utrecht en omstreken",
				PhoneNumber:      "030-2312345",
				Email:            "info@deketting.nl",
				Website:          "https://www.deketting.nl",
				Address: entities.Address{
					Street:     "Oudegracht 112",
					PostalCode: "3511 AW",
					City:       "Utrecht",
				},
				LogoURL:       "https://cdn.vindlokaal.nl/logos/de-ketting.png",
				CoverImageURL: "https://cdn.vindlokaal.nl/covers/de-ketting.jpg",
				Rating:        4.7,
				ReviewCount:   128,
				IsActive:      true,
				CreatedAt:     now,
				UpdatedAt:     now,
			},
			services:   []string{"Fietsreparatie", "E-bike onderhoud", "Banden vervangen", "Revisie", "Onderhoudscontract"},
			highlights: []string{"Zes maanden garantie", "Dezelfde dag klaar", "Gecertificeerd voor Bosch en Shimano"},
			faq: []entities.FAQItem{
				{Question: "Hoe snel is mijn fiets klaar?", Answer: "Reparaties die voor 9:00 worden gebracht zijn meestal dezelfde dag klaar."},
				{Question: "Repareren jullie ook e-bikes?", Answer: "Ja, onze monteurs zijn gecertificeerd voor Bosch en Shimano systemen."},
				{Question: "Moet ik een afspraak maken?", Answer: "Een afspraak is niet nodig, maar online reserveren garandeert dat u voorrang krijgt."},
				{Question: "Geven jullie garantie op reparaties?", Answer: "Op elke reparatie geven wij zes maanden garantie op onderdelen en arbeid."},
				{Question: "Halen jullie fietsen ook op?", Answer: "Voor zakelijke klanten binnen de singels bieden wij een haal- en brengservice."},
			},
			gallery: []entities.GalleryImage{
				{URL: "https://cdn.vindlokaal.nl/gallery/de-ketting-1.jpg", AltText: "Werkplaats met fietsen in reparatie"},
				{URL: "https://cdn.vindlokaal.nl/gallery/de-ketting-2.jpg", AltText: "Monteur vervangt een e-bike accu"},
				{URL: "https://cdn.vindlokaal.nl/gallery/de-ketting-3.jpg", AltText: "Winkelpui aan de Oudegracht"},
				{URL: "https://cdn.vindlokaal.nl/gallery/de-ketting-4.jpg", AltText: "Collectie stadsfietsen in de showroom"},
				{URL: "https://cdn.vindlokaal.nl/gallery/de-ketting-5.jpg", AltText: "Bakfiets klaar voor aflevering"},
			},
			hours: weekdays,
			reviews: []entities.Review{
				{Author: "Sanne", Rating: 5, Text: "Band geplakt terwijl ik wachtte, super service.", OwnerResponse: "Dank je wel Sanne, tot de volgende beurt!", CreatedAt: now.AddDate(0, 0, -3)},
				{Author: "Pieter", Rating: 5, Text: "E-bike revisie keurig uitgevoerd en goed uitgelegd.", OwnerResponse: "Bedankt voor het vertrouwen, Pieter.", CreatedAt: now.AddDate(0, 0, -10)},
				{Author: "Joke", Rating: 4, Text: "Prima werk, wel even wachten op een onderdeel.", OwnerResponse: "Dank voor je geduld, Joke.", CreatedAt: now.AddDate(0, -1, 0)},
			},
		},
		{
			profile: entities.BusinessProfile{
				ID:               uuid.New().String(),
				Name:             "Kapsalon Knipoog",
				Slug:             "kapsalon-knipoog",
				Category:         "Kapper",
				ShortDescription: "Moderne kapsalon in Amersfoort voor dames, heren en kinderen.",
				PhoneNumber:      "033-4567890",
				Email:            "hallo@knipoog.nl",
				Address: entities.Address{
					Street:     "Langestraat 88",
					PostalCode: "3811 AK",
					City:       "Amersfoort",
				},
				Rating:      4.1,
				ReviewCount: 9,
				IsActive:    true,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			services: []string{"Knippen", "Kleuren"},
			reviews: []entities.Review{
				{Author: "Emma", Rating: 4, Text: "Fijne salon, goed geknipt.", CreatedAt: now.AddDate(0, 0, -7)},
			},
		},
	}
}

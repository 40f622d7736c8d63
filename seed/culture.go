// Package seed holds the built-in culture catalogue loaded by the reseed
// endpoint.
package seed

import (
	"time"

	"rootroutes-service/domain"
)

// CultureSites returns a fresh copy of the catalogue stamped with now.
func CultureSites(now time.Time) []*domain.CultureSite {
	sites := []*domain.CultureSite{
		{
			Name:          "Baidyanath Dham",
			Category:      domain.CategoryTemples,
			Description:   "One of the twelve Jyotirlingas, drawing lakhs of pilgrims during the Shravani Mela.",
			Location:      "Deoghar",
			Images:        []string{"https://images.rootroutes.in/culture/baidyanath-dham.jpg"},
			Period:        "Ancient",
			Rating:        4.8,
			Visitors:      "5M+ yearly",
			GoogleMapsURL: "https://maps.google.com/?q=Baidyanath+Dham+Deoghar",
			Significance:  "Major Shaivite pilgrimage site",
			Details: map[string]string{
				"timings":  "4:00 AM - 9:00 PM",
				"festival": "Shravani Mela (July-August)",
			},
		},
		{
			Name:          "Sun Temple Bundu",
			Category:      domain.CategoryTemples,
			Description:   "Temple built in the shape of a chariot drawn by seven horses, set among forests on the Ranchi-Tata road.",
			Location:      "Bundu, Ranchi",
			Images:        []string{"https://images.rootroutes.in/culture/sun-temple-bundu.jpg"},
			Period:        "Modern",
			Rating:        4.5,
			Visitors:      "200K+ yearly",
			GoogleMapsURL: "https://maps.google.com/?q=Sun+Temple+Bundu",
			Significance:  "Chhath celebrations on the temple pond",
			Details: map[string]string{
				"timings": "6:00 AM - 7:00 PM",
			},
		},
		{
			Name:          "Jagannath Temple Ranchi",
			Category:      domain.CategoryTemples,
			Description:   "Hilltop temple modelled on Puri, host to a Rath Yatra that draws devotees from across the state.",
			Location:      "Jagannathpur, Ranchi",
			Images:        []string{"https://images.rootroutes.in/culture/jagannath-ranchi.jpg"},
			Period:        "1691",
			Rating:        4.6,
			Visitors:      "1M+ yearly",
			GoogleMapsURL: "https://maps.google.com/?q=Jagannath+Temple+Ranchi",
			Significance:  "Annual Rath Yatra",
			Details: map[string]string{
				"festival": "Rath Yatra (June-July)",
			},
		},
		{
			Name:          "Sohrai and Khovar Painting",
			Category:      domain.CategoryFolkArts,
			Description:   "Mural traditions painted by women on mud walls with natural earth pigments for harvest and marriage seasons.",
			Location:      "Hazaribagh",
			Images:        []string{"https://images.rootroutes.in/culture/sohrai-khovar.jpg"},
			Period:        "Prehistoric roots",
			Rating:        4.7,
			Visitors:      "Village art trails",
			GoogleMapsURL: "https://maps.google.com/?q=Hazaribagh",
			Significance:  "GI tagged art form",
			Details: map[string]string{
				"materials": "Red, black and white earth pigments",
			},
		},
		{
			Name:          "Sarhul",
			Category:      domain.CategoryFestivals,
			Description:   "Spring festival of the Sal blossom celebrated by Oraon, Munda and Ho communities with dance and worship of nature.",
			Location:      "Across Jharkhand",
			Images:        []string{"https://images.rootroutes.in/culture/sarhul.jpg"},
			Period:        "March-April",
			Rating:        4.9,
			Visitors:      "Statewide",
			GoogleMapsURL: "https://maps.google.com/?q=Ranchi",
			Significance:  "Marks the tribal new year",
			Details: map[string]string{
				"month": "Chaitra",
			},
		},
		{
			Name:          "Karma Festival",
			Category:      domain.CategoryFestivals,
			Description:   "Harvest festival honouring the Karam tree, with night-long Karma dances and songs.",
			Location:      "Across Jharkhand",
			Images:        []string{"https://images.rootroutes.in/culture/karma.jpg"},
			Period:        "August-September",
			Rating:        4.7,
			Visitors:      "Statewide",
			GoogleMapsURL: "https://maps.google.com/?q=Jharkhand",
			Significance:  "Celebrates brotherhood and fertility",
			Details: map[string]string{
				"month": "Bhadra",
			},
		},
		{
			Name:          "Dokra Metal Craft",
			Category:      domain.CategoryHandicrafts,
			Description:   "Lost-wax brass casting practised by the Malhar community, producing figurines, lamps and jewellery.",
			Location:      "Khunti and Dumka",
			Images:        []string{"https://images.rootroutes.in/culture/dokra.jpg"},
			Period:        "4000+ years old technique",
			Rating:        4.6,
			Visitors:      "Artisan clusters",
			GoogleMapsURL: "https://maps.google.com/?q=Khunti",
			Significance:  "Non-ferrous casting heritage",
			Details: map[string]string{
				"technique": "Cire perdue",
			},
		},
		{
			Name:          "Santhal Village Life",
			Category:      domain.CategoryTribalHeritage,
			Description:   "Painted homes, sacred groves and community dances in Santhal Pargana villages.",
			Location:      "Dumka",
			Images:        []string{"https://images.rootroutes.in/culture/santhal-village.jpg"},
			Period:        "Living tradition",
			Rating:        4.4,
			Visitors:      "Homestay visits",
			GoogleMapsURL: "https://maps.google.com/?q=Dumka",
			Significance:  "Largest tribal community of the state",
			Details: map[string]string{
				"language": "Santali (Ol Chiki script)",
			},
		},
		{
			Name:          "Palamu Fort",
			Category:      domain.CategoryHistoricalSites,
			Description:   "Twin hill forts of the Chero kings standing inside the Betla forest.",
			Location:      "Latehar",
			Images:        []string{"https://images.rootroutes.in/culture/palamu-fort.jpg"},
			Period:        "16th-17th century",
			Rating:        4.3,
			Visitors:      "100K+ yearly",
			GoogleMapsURL: "https://maps.google.com/?q=Palamu+Fort",
			Significance:  "Seat of the Chero dynasty",
			Details: map[string]string{
				"nearby": "Betla National Park",
			},
		},
		{
			Name:          "Maluti Temples",
			Category:      domain.CategoryHistoricalSites,
			Description:   "Cluster of terracotta temples built by the Baj Basanta rajas, with epic scenes on the facades.",
			Location:      "Maluti, Dumka",
			Images:        []string{"https://images.rootroutes.in/culture/maluti.jpg"},
			Period:        "17th-19th century",
			Rating:        4.2,
			Visitors:      "50K+ yearly",
			GoogleMapsURL: "https://maps.google.com/?q=Maluti+Temples",
			Significance:  "Terracotta heritage cluster",
			Details: map[string]string{
				"temples": "72 surviving",
			},
		},
	}

	for _, site := range sites {
		site.CreatedAt = now
		site.UpdatedAt = now
	}
	return sites
}

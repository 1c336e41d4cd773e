package catalogfile

import (
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Seed returns the built-in catalog bundled with the binary. It is used
// whenever no snapshot file is configured, and is the source material for
// the catalogmaker tool.
func Seed() *Catalog {
	c, err := New(seedProducts())
	if err != nil {
		panic(err) // develop mistake
	}
	return c
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "p-1", Slug: "hikvision-dome-2mp-indoor",
			Name:  "Hikvision 2MP Indoor Dome Camera",
			Brand: "Hikvision", Category: "dome-cameras",
			Type: domain.TypeIndoor, Resolution: "2MP",
			Price: 1899, OriginalPrice: 2499,
			Rating: 4.5, Reviews: 231, InStock: true,
			ShortDescription: "Compact IR dome for homes and offices.",
			Description: "Full HD 1080p dome camera with 20m smart IR, " +
				"3D DNR and a vandal-resistant housing. Suited to " +
				"reception areas, shops and living rooms.",
			Image: "/images/products/hikvision-dome-2mp.jpg",
			Specifications: map[string]string{
				"Sensor":     "1/2.7\" CMOS",
				"Lens":       "2.8mm fixed",
				"IR Range":   "20m",
				"Protection": "IK08",
			},
			CreatedAt: day(2024, time.November, 12),
			Featured:  true, BestSelling: true,
		},
		{
			ID: "p-2", Slug: "hikvision-bullet-5mp-outdoor",
			Name:  "Hikvision 5MP Outdoor Bullet Camera",
			Brand: "Hikvision", Category: "bullet-cameras",
			Type: domain.TypeOutdoor, Resolution: "5MP",
			Price: 3499, OriginalPrice: 4199,
			Rating: 4.7, Reviews: 189, InStock: true,
			ShortDescription: "Weatherproof bullet with 40m EXIR.",
			Description: "5MP bullet camera rated IP67 for harsh weather, " +
				"40m EXIR night vision and a wide dynamic range sensor " +
				"for gates, driveways and perimeters.",
			Image: "/images/products/hikvision-bullet-5mp.jpg",
			Specifications: map[string]string{
				"Sensor":   "1/2.7\" CMOS",
				"Lens":     "3.6mm fixed",
				"IR Range": "40m",
				"Rating":   "IP67",
			},
			CreatedAt: day(2025, time.January, 8),
			Featured:  true, BestSelling: false,
		},
		{
			ID: "p-3", Slug: "cpplus-dome-2mp-indoor",
			Name:  "CP Plus 2MP IR Dome Camera",
			Brand: "CP Plus", Category: "dome-cameras",
			Type: domain.TypeIndoor, Resolution: "2MP",
			Price: 1299,
			Rating: 4.2, Reviews: 412, InStock: true,
			ShortDescription: "Budget-friendly indoor dome.",
			Description: "Reliable 1080p indoor dome with 20m IR and " +
				"true day/night switching. The entry point for small " +
				"shops and apartments.",
			Image: "/images/products/cpplus-dome-2mp.jpg",
			Specifications: map[string]string{
				"Sensor":   "1/3\" CMOS",
				"Lens":     "3.6mm fixed",
				"IR Range": "20m",
			},
			CreatedAt: day(2024, time.August, 3),
			Featured:  false, BestSelling: true,
		},
		{
			ID: "p-4", Slug: "cpplus-bullet-4mp-outdoor",
			Name:  "CP Plus 4MP Outdoor Bullet Camera",
			Brand: "CP Plus", Category: "bullet-cameras",
			Type: domain.TypeOutdoor, Resolution: "4MP",
			Price: 2599, OriginalPrice: 2999,
			Rating: 4.3, Reviews: 156, InStock: true,
			ShortDescription: "4MP clarity for building exteriors.",
			Description: "IP66 bullet camera with 30m IR and a metal " +
				"housing, built for compound walls and parking areas.",
			Image: "/images/products/cpplus-bullet-4mp.jpg",
			Specifications: map[string]string{
				"Sensor":   "1/3\" CMOS",
				"Lens":     "3.6mm fixed",
				"IR Range": "30m",
				"Rating":   "IP66",
			},
			CreatedAt: day(2024, time.October, 21),
			Featured:  true, BestSelling: false,
		},
		{
			ID: "p-5", Slug: "dahua-ptz-4mp-outdoor",
			Name:  "Dahua 4MP 25x PTZ Camera",
			Brand: "Dahua", Category: "ptz-cameras",
			Type: domain.TypeOutdoor, Resolution: "4MP",
			Price: 18999, OriginalPrice: 22500,
			Rating: 4.8, Reviews: 64, InStock: true,
			ShortDescription: "25x optical zoom, auto tracking.",
			Description: "Professional pan-tilt-zoom camera with 25x " +
				"optical zoom, 100m IR and auto tracking for campuses, " +
				"warehouses and large open sites.",
			Image: "/images/products/dahua-ptz-4mp.jpg",
			Specifications: map[string]string{
				"Zoom":     "25x optical",
				"Pan":      "360° endless",
				"IR Range": "100m",
				"Rating":   "IP66",
			},
			CreatedAt: day(2025, time.February, 14),
			Featured:  true, BestSelling: false,
		},
		{
			ID: "p-6", Slug: "dahua-dome-8mp-indoor",
			Name:  "Dahua 8MP 4K Indoor Dome Camera",
			Brand: "Dahua", Category: "dome-cameras",
			Type: domain.TypeIndoor, Resolution: "8MP",
			Price: 7499,
			Rating: 4.6, Reviews: 47, InStock: true,
			ShortDescription: "4K detail for critical indoor areas.",
			Description: "Ultra HD 8MP dome with starlight sensor and " +
				"smart motion detection for jewellery counters, vaults " +
				"and cash rooms.",
			Image: "/images/products/dahua-dome-8mp.jpg",
			Specifications: map[string]string{
				"Sensor":   "1/2.8\" starlight CMOS",
				"Lens":     "2.8mm fixed",
				"IR Range": "30m",
			},
			CreatedAt: day(2025, time.March, 2),
			Featured:  false, BestSelling: false,
		},
		{
			ID: "p-7", Slug: "tplink-tapo-wifi-2mp-indoor",
			Name:  "TP-Link Tapo Wi-Fi Pan/Tilt Camera",
			Brand: "TP-Link", Category: "wifi-cameras",
			Type: domain.TypeIndoor, Resolution: "2MP",
			Price: 2299, OriginalPrice: 2799,
			Rating: 4.4, Reviews: 1038, InStock: true,
			ShortDescription: "App-controlled home camera.",
			Description: "1080p Wi-Fi camera with 360° pan, two-way " +
				"audio, motion alerts and local microSD recording. Set " +
				"up in minutes from the Tapo app.",
			Image: "/images/products/tplink-tapo-2mp.jpg",
			Specifications: map[string]string{
				"Connectivity": "2.4GHz Wi-Fi",
				"Pan/Tilt":     "360°/114°",
				"Storage":      "microSD up to 256GB",
			},
			CreatedAt: day(2025, time.April, 18),
			Featured:  true, BestSelling: true,
		},
		{
			ID: "p-8", Slug: "tplink-tapo-wifi-4mp-outdoor",
			Name:  "TP-Link Tapo 4MP Outdoor Wi-Fi Camera",
			Brand: "TP-Link", Category: "wifi-cameras",
			Type: domain.TypeOutdoor, Resolution: "4MP",
			Price: 3999,
			Rating: 4.5, Reviews: 286, InStock: false,
			ShortDescription: "Wire-free outdoor coverage.",
			Description: "2K outdoor Wi-Fi camera with colour night " +
				"vision, IP65 housing and built-in siren. No video " +
				"cabling required.",
			Image: "/images/products/tplink-tapo-4mp.jpg",
			Specifications: map[string]string{
				"Connectivity": "2.4GHz Wi-Fi",
				"Night Vision": "Colour, 30m",
				"Rating":       "IP65",
			},
			CreatedAt: day(2025, time.May, 30),
			Featured:  false, BestSelling: false,
		},
		{
			ID: "p-9", Slug: "godrej-kit-4ch-2mp",
			Name:  "Godrej 4-Channel 2MP CCTV Kit",
			Brand: "Godrej", Category: "cctv-kits",
			Type: domain.TypeOutdoor, Resolution: "2MP",
			Price: 12999, OriginalPrice: 15999,
			Rating: 4.3, Reviews: 98, InStock: true,
			ShortDescription: "Complete 4-camera starter kit.",
			Description: "Everything for a small premises: 4 weatherproof " +
				"2MP cameras, 4-channel DVR, 1TB surveillance drive, " +
				"cables and power supplies.",
			Image: "/images/products/godrej-kit-4ch.jpg",
			Specifications: map[string]string{
				"Channels": "4",
				"Cameras":  "2 dome + 2 bullet",
				"Storage":  "1TB HDD included",
			},
			CreatedAt: day(2024, time.September, 9),
			Featured:  true, BestSelling: true,
		},
		{
			ID: "p-10", Slug: "godrej-kit-8ch-4mp",
			Name:  "Godrej 8-Channel 4MP CCTV Kit",
			Brand: "Godrej", Category: "cctv-kits",
			Type: domain.TypeOutdoor, Resolution: "4MP",
			Price: 24999, OriginalPrice: 28999,
			Rating: 4.6, Reviews: 41, InStock: true,
			ShortDescription: "Full coverage for offices and villas.",
			Description: "8-channel NVR kit with 4MP PoE cameras, 2TB " +
				"storage and remote mobile viewing. Professional " +
				"installation recommended.",
			Image: "/images/products/godrej-kit-8ch.jpg",
			Specifications: map[string]string{
				"Channels": "8",
				"Cameras":  "8 bullet, PoE",
				"Storage":  "2TB HDD included",
			},
			CreatedAt: day(2025, time.June, 11),
			Featured:  true, BestSelling: false,
		},
		{
			ID: "p-11", Slug: "hikvision-ptz-2mp-outdoor",
			Name:  "Hikvision 2MP Mini PTZ Camera",
			Brand: "Hikvision", Category: "ptz-cameras",
			Type: domain.TypeOutdoor, Resolution: "2MP",
			Price: 9499,
			Rating: 4.4, Reviews: 73, InStock: true,
			ShortDescription: "Compact PTZ with 15x zoom.",
			Description: "Mini PTZ dome with 15x optical zoom and 50m IR " +
				"for medium-sized yards and showrooms.",
			Image: "/images/products/hikvision-ptz-2mp.jpg",
			Specifications: map[string]string{
				"Zoom":     "15x optical",
				"IR Range": "50m",
				"Rating":   "IP66",
			},
			CreatedAt: day(2024, time.December, 1),
			Featured:  false, BestSelling: false,
		},
		{
			ID: "p-12", Slug: "dahua-wifi-2mp-indoor-cube",
			Name:  "Dahua 2MP Wi-Fi Cube Camera",
			Brand: "Dahua", Category: "wifi-cameras",
			Type: domain.TypeIndoor, Resolution: "2MP",
			Price: 1999, OriginalPrice: 2399,
			Rating: 4.1, Reviews: 164, InStock: true,
			ShortDescription: "Desktop camera with PIR detection.",
			Description: "Compact cube camera with human-body PIR " +
				"detection, two-way talk and cloud or microSD recording.",
			Image: "/images/products/dahua-cube-2mp.jpg",
			Specifications: map[string]string{
				"Connectivity": "2.4GHz Wi-Fi",
				"Detection":    "PIR, 5m",
				"Audio":        "Two-way",
			},
			CreatedAt: day(2025, time.July, 22),
			Featured:  false, BestSelling: true,
		},
	}
}

// SeedServices returns the bundled services-page content.
func SeedServices() []domain.ServiceOffering {
	return []domain.ServiceOffering{
		{
			ID: "installation", Icon: "🛠️",
			Title:       "CCTV Installation",
			Description: "Site survey, cabling, mounting and configuration by certified technicians.",
			Price:       "From ₹499 per camera",
			Features: []string{
				"Same-week scheduling",
				"Concealed wiring",
				"Mobile viewing setup",
			},
		},
		{
			ID: "amc", Icon: "📋",
			Title:       "Annual Maintenance",
			Description: "Quarterly health checks, lens cleaning and priority breakdown support.",
			Price:       "From ₹2,999 per year",
			Features: []string{
				"4 scheduled visits",
				"Free minor spares",
				"48-hour response",
			},
		},
		{
			ID: "repair", Icon: "🔧",
			Title:       "Repair & Upgrade",
			Description: "Diagnosis and repair of cameras, DVRs and storage, or migration to IP systems.",
			Price:       "From ₹299 inspection",
			Features: []string{
				"Doorstep diagnosis",
				"Genuine spares",
				"30-day workmanship warranty",
			},
		},
		{
			ID: "consultation", Icon: "💬",
			Title:       "Security Consultation",
			Description: "Coverage planning and product selection for homes, shops and offices.",
			Price:       "Free",
			Features: []string{
				"Site walk-through",
				"Written proposal",
				"No-obligation quote",
			},
		},
	}
}

// SeedTestimonials returns the bundled customer testimonials.
func SeedTestimonials() []domain.Testimonial {
	return []domain.Testimonial{
		{
			ID: "t-1", Name: "Rahul Mehta", Role: "Shop Owner, Pune",
			Text: "Four cameras installed in a day, neat wiring, and the " +
				"mobile app was set up before the team left.",
			Rating: 5,
		},
		{
			ID: "t-2", Name: "Sangeeta Iyer", Role: "Homeowner, Chennai",
			Text: "Picked the Wi-Fi camera on their advice instead of a " +
				"pricier kit. Honest recommendations, quick support.",
			Rating: 5,
		},
		{
			ID: "t-3", Name: "Imran Shaikh", Role: "Warehouse Manager",
			Text: "The PTZ covers our whole yard. AMC visits have been " +
				"on schedule for two years now.",
			Rating: 4,
		},
	}
}

// SeedStore returns the bundled store contact details.
func SeedStore() domain.StoreInfo {
	return domain.StoreInfo{
		Name:    "Ether Enterprises",
		Address: "14, Lakshmi Complex, MG Road, Bengaluru 560001",
		Phone:   "+91 98765 43210",
		Email:   "support@etherenterprises.in",
		Hours:   "Mon–Sat 9:30–19:30",
	}
}

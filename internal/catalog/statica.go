package catalog

import "statica/entity"

const website = "https://statica.in"

func StaticaCompany() entity.Company {
	return entity.Company{
		Name:           "Statica",
		Website:        website,
		SupportEmail:   "support@statica.in",
		Phone:          "+91 98765 43210",
		Address:        "Statica Aeromodelling, Bengaluru, India",
		BusinessType:   "Premium Aircraft Model Kits & Aeromodelling Supplies",
		Description:    "India's premier destination for precision aircraft model kits, tools, and aeromodelling supplies",
		TargetAudience: "Hobbyists, NCC Cadets, Aviation Students, Collectors, Model Building Enthusiasts",
		Shipping:       "Ships across India and internationally",
		Support:        "Email and WhatsApp support available",
	}
}

var virusFeatures = []string{
	"High quality imported Balsa wood",
	"Precision CNC laser cut",
	"Includes scale Technical Drawing",
	"Molded PVC canopy",
	"Undercarriage detailing",
	"IAF scheme decals",
	"Zig-zag puzzle type assembly",
}

// Default returns the Statica catalog.
func Default() *Catalog {
	return New(StaticaCompany(), []entity.Product{
		{
			ID:          Virus30,
			Name:        "Virus SW 80 Static Model Balsa Kit (30 cms)",
			Category:    entity.CategoryStaticModels,
			Price:       "₹3,499.00",
			Description: "30cm version of the iconic Virus SW 80 jet trainer. Precision CNC laser-cut from imported balsa wood.",
			Features:    virusFeatures,
			Specs:       "Length: 30cm, Material: Balsa Wood",
			IdealFor:    "NCC competitions, beginners, hobbyists, educational projects",
			Url:         website + "/balsa-wood-aircraft-model-kits/",
		},
		{
			ID:          Virus55,
			Name:        "Virus SW 80 Static Model Balsa Kit (55 cms)",
			Category:    entity.CategoryStaticModels,
			Price:       "₹4,499.00",
			Description: "55cm larger version of the Virus SW 80. More detailed and impressive display piece.",
			Features:    virusFeatures,
			Specs:       "Length: 55cm, Material: Balsa Wood",
			IdealFor:    "Advanced modelers, display pieces, competitions, collectors",
			Url:         website + "/balsa-wood-aircraft-model-kits/",
		},
		{
			ID:          Rafale,
			Name:        "Dassault Rafale Static Model Kit",
			Category:    entity.CategoryStaticModels,
			Price:       "₹4,899.00",
			Description: "Detailed model of the French Dassault Rafale multirole fighter aircraft.",
			Features: []string{
				"Premium balsa wood construction",
				"Precision laser-cut parts",
				"Detailed technical drawings",
				"Authentic decals and markings",
			},
			Specs:    "Scale model, Material: Balsa Wood",
			IdealFor: "Advanced modelers, military aircraft enthusiasts",
			Url:      website + "/premium-aircraft-models/",
		},
		{
			ID:          Sukhoi,
			Name:        "Sukhoi Su-30MKI Static Model Kit",
			Category:    entity.CategoryStaticModels,
			Price:       "₹4,899.00",
			Description: "Scale model of the Indian Air Force's Sukhoi Su-30MKI air superiority fighter.",
			Features: []string{
				"Authentic IAF markings",
				"Precision engineering",
				"Detailed assembly instructions",
				"High-quality materials",
			},
			Specs:    "Scale model, Material: Balsa Wood",
			IdealFor: "IAF enthusiasts, advanced builders",
			Url:      website + "/premium-aircraft-models/",
		},
		{
			ID:          Skybee,
			Name:        "Skybee 25 CL Trainer Kit",
			Category:    entity.CategoryFlyingModels,
			Price:       "₹3,994.00",
			Description: "Control Line trainer aircraft perfect for beginners in flying models.",
			Features: []string{
				"Ready-to-build control line kit",
				"Ideal for beginners",
				"Stable flight characteristics",
				"Complete assembly required",
			},
			Specs:    "Control Line, Skill Level: Beginner",
			IdealFor: "Flying beginners, control line enthusiasts",
			Url:      website + "/flying-model-kits-rc-control-line/",
		},
		{
			ID:          Peacemaker,
			Name:        "Ultra Peacemaker Flying Model Kit",
			Category:    entity.CategoryFlyingModels,
			Price:       "₹5,166.00",
			Description: "Advanced flying model kit for experienced hobbyists.",
			Features: []string{
				"High-performance design",
				"Suitable for experienced builders",
				"Excellent flight characteristics",
				"Premium construction materials",
			},
			Specs:    "Flying Model, Skill Level: Advanced",
			IdealFor: "Experienced flyers, hobby competitions",
			Url:      website + "/flying-model-kits-rc-control-line/",
		},
		{
			ID:          Tools,
			Name:        "Precision Modeling Tools Set",
			Category:    entity.CategoryTools,
			Price:       entity.PriceVaries,
			Description: "Professional tools for aircraft model assembly and finishing.",
			Features: []string{
				"Precision cutters and knives",
				"Specialized sanding tools",
				"Assembly jigs and holders",
				"Finishing supplies",
			},
			Specs:    "Various tools and accessories",
			IdealFor: "All model builders, serious hobbyists",
			Url:      website + "/precision-modeling-tools-aircraft-assembly/",
		},
	})
}

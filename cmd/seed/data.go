package main

import (
	clientsrepo "vocalfitness_backend/internal/clients/repository"
	testimonialsrepo "vocalfitness_backend/internal/testimonials/repository"
)

// Testimonials published on www.vocalfitness.org.
var seedTestimonialData = []testimonialsrepo.Testimonial{
	{
		Text:     "Steve non è semplice un coach. Ti fa vivere un'esperienza artistica all'interno della didattica. Ci vorrebbe un po' più di Steve Dapper nelle aziende Italiane per essere più forti e competitivi sui mercati internazionali con il nostro Made in Italy.",
		Author:   "David Guido Pietroni",
		Role:     "Executive Producer",
		Company:  "Tribeca Film",
		Location: "New York",
		Language: "it",
		Featured: true,
	},
	{
		Text:     "His teachings are unprecedented and extremely functional not just at getting to quickly learn English but at becoming bilingual without even having to move to an English speaking country. Steve has also a very human approach that makes him a fun and an interesting individual to hangout with. We have used Steve services quite a lot at our company with satisfaction.",
		Author:   "Guido Bernardinelli",
		Role:     "CEO",
		Company:  "La Marzocco LLC",
		Location: "Seattle",
		Language: "en",
		Featured: true,
	},
	{
		Text:     "Capace, diretto e sempre molto concentrato al raggiungimento dell'obiettivo. Fissane uno preciso e, con lui, lo raggiungerai bene e presto! Affidabile, unico e sempre molto attento a farti ben figurare...per ben figurare con lui.",
		Author:   "Luca Rusconi",
		Role:     "CEO",
		Company:  "La Rusconi S.p.A",
		Location: "Milan",
		Language: "it",
		Featured: true,
	},
	{
		Text:     "Steve is an excellent professional and awesome human being! God gave Steve the rhythm, Steve did the rest...",
		Author:   "Gabriele Gresta",
		Role:     "Founder",
		Company:  "Hyperloop TT",
		Location: "Los Angeles",
		Language: "en",
		Featured: true,
	},
	{
		Text:     "Steve è una delle persone più dinamiche e innovative che io conosca. Una garanzia professionale!",
		Author:   "Silvana Carcano",
		Role:     "Commissione Antimafia",
		Company:  "Senato della Repubblica",
		Location: "Roma",
		Language: "it",
		Featured: true,
	},
	{
		Text:     "I rarely come across real talents who stand out like Steve! He's simply the best language specialist I've ever met.",
		Author:   "Fabio Sormani",
		Role:     "CFO",
		Company:  "Yamazaki Mazak",
		Location: "Milan",
		Language: "en",
		Featured: true,
	},
}

// Client companies published on www.vocalfitness.org.
var seedClientData = []clientsrepo.Client{
	{
		Name:     "Dell Technologies",
		LogoURL:  "https://logo.clearbit.com/dell.com",
		Website:  "https://www.dell.com",
		Sector:   "Technology",
		Featured: true,
	},
	{
		Name:     "La Marzocco",
		LogoURL:  "https://logo.clearbit.com/lamarzoccousa.com",
		Website:  "https://www.lamarzoccousa.com",
		Sector:   "Manufacturing",
		Featured: true,
	},
	{
		Name:     "Yamazaki Mazak",
		LogoURL:  "https://logo.clearbit.com/mazakusa.com",
		Website:  "https://www.mazakusa.com",
		Sector:   "Manufacturing",
		Featured: true,
	},
	{
		Name:     "Tribeca Film",
		LogoURL:  "https://logo.clearbit.com/tribecafilm.com",
		Website:  "https://www.tribecafilm.com",
		Sector:   "Entertainment",
		Featured: true,
	},
	{
		Name:     "Hyperloop TT",
		LogoURL:  "https://logo.clearbit.com/hyperlooptt.com",
		Website:  "https://www.hyperlooptt.com",
		Sector:   "Transportation",
		Featured: true,
	},
	{
		Name:     "Università E-Campus",
		LogoURL:  "https://logo.clearbit.com/uniecampus.it",
		Website:  "https://www.uniecampus.it",
		Sector:   "Education",
		Featured: true,
	},
	{
		Name:     "Education First (EF)",
		LogoURL:  "https://logo.clearbit.com/ef.com",
		Website:  "https://www.ef.com",
		Sector:   "Education",
		Featured: true,
	},
	{
		Name:     "MIUR",
		LogoURL:  "https://logo.clearbit.com/miur.gov.it",
		Website:  "https://www.miur.gov.it",
		Sector:   "Government",
		Featured: true,
	},
	{
		Name:     "Oxford University",
		LogoURL:  "https://logo.clearbit.com/ox.ac.uk",
		Website:  "https://www.ox.ac.uk",
		Sector:   "Education",
		Featured: true,
	},
}

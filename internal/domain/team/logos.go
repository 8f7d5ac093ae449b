package team

const (
	plBadges  = "https://resources.premierleague.com/premierleague/badges/rb_120/"
	wikiCrest = "https://upload.wikimedia.org/wikipedia/en/"
)

var logos = map[string]string{
	// Premier League
	"Manchester City":   plBadges + "t43.png",
	"Arsenal":           plBadges + "t3.png",
	"Liverpool":         plBadges + "t6.png",
	"Chelsea":           plBadges + "t8.png",
	"Manchester United": plBadges + "t1.png",
	"Tottenham":         plBadges + "t14.png",
	"Brighton":          plBadges + "t36.png",
	"Aston Villa":       plBadges + "t7.png",
	"Fulham":            plBadges + "t54.png",
	"Brentford":         plBadges + "t94.png",
	"West Ham":          plBadges + "t21.png",
	"Everton":           plBadges + "t11.png",
	"Leicester":         plBadges + "t13.png",
	"Nottingham Forest": plBadges + "t17.png",
	"Newcastle":         plBadges + "t4.png",
	"Bournemouth":       plBadges + "t91.png",
	"Luton Town":        plBadges + "t103.png",
	"Crystal Palace":    plBadges + "t31.png",
	"Ipswich Town":      plBadges + "t40.png",
	"Southampton":       plBadges + "t20.png",
	"Wolverhampton":     plBadges + "t39.png",

	// La Liga
	"Real Madrid":     wikiCrest + "5/56/Real_Madrid_CF.svg",
	"Barcelona":       wikiCrest + "4/47/FC_Barcelona_%282009%E2%80%932011%29.svg",
	"Atletico Madrid": wikiCrest + "f/f4/Atletico_Madrid.svg",
	"Sevilla":         wikiCrest + "3/3b/Sevilla_FC.svg",
	"Valencia":        wikiCrest + "c/ce/Valencia_CF.svg",
	"Real Sociedad":   wikiCrest + "f/f1/Real_Sociedad_logo.svg",
	"Villarreal":      wikiCrest + "b/b9/Villarreal_CF.svg",
	"Betis":           wikiCrest + "1/13/Real_Betis_logo.svg",
	"Osasuna":         wikiCrest + "a/a7/CA_Osasuna.svg",
	"Mallorca":        wikiCrest + "3/3a/RCD_Mallorca.svg",

	// Serie A
	"Inter Milan": wikiCrest + "0/05/FC_Internazionale_Milano_logo.svg",
	"AC Milan":    wikiCrest + "d/d0/AC_Milan.svg",
	"Juventus":    wikiCrest + "0/05/Juventus_FC_2017_logo.svg",
	"Napoli":      wikiCrest + "2/2e/SSC_Napoli.svg",
	"Lazio":       wikiCrest + "c/ce/Lazio_badge.svg",
	"Roma":        wikiCrest + "f/f7/AS_Roma_logo_%282017%29.svg",
	"Fiorentina":  wikiCrest + "b/b1/ACF_Fiorentina.svg",
	"Atalanta":    wikiCrest + "7/7f/Atalanta_BC.svg",
	"Torino":      wikiCrest + "e/e9/Torino_FC_logo.svg",
	"Bologna":     wikiCrest + "2/28/Bologna_FC_1909_logo.svg",

	// Bundesliga
	"Bayern Munich":       wikiCrest + "1/1f/FC_Bayern_Munich_logo.svg",
	"Borussia Dortmund":   wikiCrest + "d/df/Borussia_Dortmund_logo.svg",
	"RB Leipzig":          wikiCrest + "7/7f/RB_Leipzig_2014_logo.svg",
	"Bayer Leverkusen":    wikiCrest + "e/e2/Bayer_04_Leverkusen_logo.svg",
	"Schalke 04":          wikiCrest + "1/04/FC_Schalke_04_logo.svg",
	"Eintracht Frankfurt": wikiCrest + "0/04/Eintracht_Frankfurt_logo.svg",
	"Werder Bremen":       wikiCrest + "7/71/SV_Werder_Bremen_logo.svg",
	"Hoffenheim":          wikiCrest + "e/eb/TSG_1899_Hoffenheim_logo.svg",
	"Mainz 05":            wikiCrest + "0/0f/1._FSV_Mainz_05_logo.svg",
	"Augsburg":            wikiCrest + "f/f0/FC_Augsburg_logo.svg",

	// Ligue 1
	"Paris Saint-Germain": wikiCrest + "a/a7/Paris_Saint-Germain_F.C..svg",
	"Marseille":           wikiCrest + "e/ea/Olympique_de_Marseille_logo.svg",
	"Monaco":              wikiCrest + "5/50/AS_Monaco_FC.svg",
	"Lyon":                wikiCrest + "d/d8/Olympique_Lyonnais_logo.svg",
	"Lille":               wikiCrest + "b/b4/LOSC_Lille_Metropole.svg",
	"Nice":                wikiCrest + "4/41/OGC_Nice_logo.svg",
	"Lens":                wikiCrest + "c/c0/RC_Lens_logo.svg",
	"Rennes":              wikiCrest + "4/45/Stade_Rennais_F.C._logo.svg",
	"Nantes":              wikiCrest + "a/aa/FC_Nantes_logo.svg",
	"Toulouse":            wikiCrest + "8/8f/Toulouse_FC_logo.svg",
}

var colors = map[string]Colors{
	"Manchester City":   {Primary: "#6CABDA", Secondary: "#1D3457"},
	"Arsenal":           {Primary: "#EF0107", Secondary: "#FFFFFF"},
	"Liverpool":         {Primary: "#C8102E", Secondary: "#FFFFFF"},
	"Chelsea":           {Primary: "#034694", Secondary: "#FFFFFF"},
	"Manchester United": {Primary: "#DA291C", Secondary: "#FFFFFF"},
	"Tottenham":         {Primary: "#FFFFFF", Secondary: "#132257"},
	"Real Madrid":       {Primary: "#FFFFFF", Secondary: "#000000"},
	"Barcelona":         {Primary: "#004687", Secondary: "#FFC52F"},
	"Bayern Munich":     {Primary: "#DC052D", Secondary: "#FFFFFF"},
	"Inter Milan":       {Primary: "#0066CC", Secondary: "#000000"},
}

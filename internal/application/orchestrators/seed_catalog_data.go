package orchestrators

import (
	"relish/internal/domain/branch"
	"relish/internal/domain/coach"
	"relish/internal/domain/facility"
	"relish/internal/domain/sport"
)

const unsplash = "https://images.unsplash.com/"

var sampleSports = []sport.Sport{
	{
		Name:              "Cricket",
		Description:       "Professional cricket training with world-class facilities including nets, coaching, and practice sessions. Experience the thrill of this gentleman's game.",
		ImageURL:          unsplash + "photo-1540747913346-19e32dc3e97e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Facilities:        []string{"Cricket Nets", "Practice Pitches", "Coaching", "Equipment", "Match Grounds"},
		CoachingAvailable: true,
	},
	{
		Name:              "Football",
		Description:       "Football training with professional coaches and state-of-the-art turf facilities. Master the beautiful game with our expert guidance.",
		ImageURL:          unsplash + "photo-1560272564-c83b66b1ad12?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Facilities:        []string{"Football Turf", "Goal Posts", "Coaching", "Fitness Training", "Match Pitches"},
		CoachingAvailable: true,
	},
	{
		Name:              "Badminton",
		Description:       "Indoor badminton courts with professional coaching and equipment rental. Perfect for players of all skill levels.",
		ImageURL:          unsplash + "photo-1544717117-8b808532ee78?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Facilities:        []string{"Indoor Courts", "Professional Coaching", "Equipment Rental", "Tournament Facilities"},
		CoachingAvailable: true,
	},
	{
		Name:              "Table Tennis",
		Description:       "Professional table tennis facilities with expert coaching and tournaments. Fast-paced action in a controlled environment.",
		ImageURL:          unsplash + "photo-1593766806881-75d3ef5c3402?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Facilities:        []string{"Multiple Tables", "Professional Coaching", "Tournament Facilities", "Practice Sessions"},
		CoachingAvailable: true,
	},
	{
		Name:              "Kabaddi",
		Description:       "Traditional Indian sport that combines strength, agility, and strategy. Experience the ancient art of Kabaddi with professional training.",
		ImageURL:          unsplash + "photo-1700319021396-95aec8e168ac?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Facilities:        []string{"Kabaddi Mat", "Training Ground", "Coaching", "Fitness Training", "Team Formation"},
		CoachingAvailable: true,
	},
	{
		Name:              "Basketball",
		Description:       "Indoor basketball courts with professional coaching and competitive leagues. Develop your skills and teamwork.",
		ImageURL:          unsplash + "photo-1602674809970-89073c530b0a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Facilities:        []string{"Indoor Courts", "Professional Coaching", "League Matches", "Fitness Training"},
		CoachingAvailable: true,
	},
}

var sampleFacilities = []facility.Facility{
	{
		Name:        "State of the Art Facilities",
		Description: "We aim to provide the best for our players. These turfs are made of the best in the industry polyvinyl derivatives, and we source our equipment from the topmost sports suppliers.",
		ImageURL:    unsplash + "photo-1705593136686-d5f32b611aa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Location:    "Both Branches",
		Features:    []string{"Professional Turf", "Modern Equipment", "Safety Standards", "Regular Maintenance", "Climate Control"},
	},
	{
		Name:        "Professional Coaching",
		Description: "Our coaches are graduates of Sports Ministry of India's mandatory A++ programmes. Four of them have an undergraduate degree in sports sciences and studies as well.",
		ImageURL:    unsplash + "photo-1632064914162-1d99c4cb571c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Location:    "Both Branches",
		Features:    []string{"Certified Coaches", "Structured Training", "Individual Attention", "Performance Analysis", "Sports Science"},
	},
	{
		Name:        "Training & Fitness Center",
		Description: "Comprehensive fitness facilities with modern equipment and expert trainers to help athletes reach their peak performance.",
		ImageURL:    unsplash + "photo-1620188500179-32ac33c60848?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
		Location:    "Both Branches",
		Features:    []string{"Modern Gym Equipment", "Personal Trainers", "Fitness Programs", "Nutrition Guidance", "Recovery Centers"},
	},
}

var sampleCoaches = []coach.Coach{
	{
		Name:        "Albert James",
		Designation: "CEO & Co-Founder",
		Description: "Ex-Employee at Accenture, Avid fan of Chelsea, foodie, Gym freak. Expert in football training and sports management.",
		ImageURL:    unsplash + "photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
		Sports:      []string{"Football", "General Fitness", "Sports Management"},
	},
	{
		Name:        "Jameel Pasha",
		Designation: "CTO & Co-Founder",
		Description: "Ex-Employee at Zomato, Avid fan of Tottenham, Football freak. Specializes in sports technology and football coaching.",
		ImageURL:    unsplash + "photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
		Sports:      []string{"Football", "Sports Technology", "Team Strategy"},
	},
	{
		Name:        "Keertan Kumar",
		Designation: "COO & Co-Founder",
		Description: "Ex-Employee at NVIDIA, Avid fan of CSK, Cricket fan. Expert in cricket coaching and operations management.",
		ImageURL:    unsplash + "photo-1500648767791-c0739923b432?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
		Sports:      []string{"Cricket", "Operations", "Team Management"},
	},
	{
		Name:        "Priya Sharma",
		Designation: "Head Badminton Coach",
		Description: "Former state-level badminton player with 10+ years of coaching experience. Specializes in technique and mental training.",
		ImageURL:    unsplash + "photo-1632064460079-dae5e6a25054?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
		Sports:      []string{"Badminton", "Mental Training", "Youth Development"},
	},
	{
		Name:        "Rajesh Patel",
		Designation: "Kabaddi Master Coach",
		Description: "National-level Kabaddi player turned coach. Expert in traditional Indian sports and fitness training.",
		ImageURL:    "https://images.pexels.com/photos/6296021/pexels-photo-6296021.jpeg?auto=compress&cs=tinysrgb&w=400",
		Sports:      []string{"Kabaddi", "Traditional Sports", "Strength Training"},
	},
}

var sampleBranches = []branch.Branch{
	{
		Name:        "Relish Bangalore",
		Location:    "Bangalore",
		Description: "Opened in 2017, this is our Main Branch. Located in the heart of the IT hub, perfect for young professionals.",
		ImageURL:    "/static/images/bangalore.svg",
		ContactInfo: branch.ContactInfo{
			Address: "28-1-7/4, J.P.Nagar 4th block, Besides Prestige Towers, Bangalore, Karnataka, India",
			Phone:   "+41 97454 45321",
		},
	},
	{
		Name:        "Relish Vizag",
		Location:    "Visakhapatnam",
		Description: "Opened in 2021, this is our fastest growing branch. Located along the beach road.",
		ImageURL:    "/static/images/vizag.svg",
		ContactInfo: branch.ContactInfo{
			Address: "39-39-7/1, Muralinagar, Near Masjid-e-Nabwi, Visakhapatnam, India",
			Phone:   "+1 3(467)5 4986",
		},
	},
}

package main

import (
	"fmt"
	"log"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// 示例站点数据生成器
func main() {
	// 初始化数据库
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成示例数据...")

	seedAdminUser()
	seedProfile()
	seedProjects()
	seedServices()
	seedExperience()
	seedEducation()
	seedSkills()
	seedClients()
	seedTestimonials()

	fmt.Println("示例数据生成完成！")
	fmt.Println("用户: admin (密码: admin123)")
}

// 创建管理员用户
func seedAdminUser() {
	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("用户已存在，跳过创建")
		return
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := db.User{
		Username: "admin",
		Password: string(hashedPassword),
	}
	db.DB.Create(&admin)

	fmt.Println("✅ 管理员用户创建完成")
}

// 填充个人资料单例
func seedProfile() {
	var count int64
	db.DB.Model(&db.Profile{}).Count(&count)
	if count > 0 {
		fmt.Println("个人资料已存在，跳过创建")
		return
	}

	profile := db.Profile{
		Name:     "Winter Jackson",
		Title:    "Software Developer",
		Email:    "winterjacksonwj@gmail.com",
		Phone:    "+254 795 213 399",
		Location: "Nairobi, Kenya",
		Bio:      "An experienced software developer proficient in analyzing, modifying, and designing end-user applications tailored to specific needs. Skilled in Python, React JS, Next JS, and common libraries for development and testing.",
		GitHub:   "https://github.com/WinterJackson",
		LinkedIn: "https://linkedin.com/in/winterjackson",
	}
	db.DB.Create(&profile)

	fmt.Println("✅ 个人资料创建完成")
}

// 创建示例项目
func seedProjects() {
	var count int64
	db.DB.Model(&db.Project{}).Count(&count)
	if count > 0 {
		fmt.Println("项目已存在，跳过创建")
		return
	}

	projects := []db.Project{
		{
			Title:       "Vepo Clear Water",
			Category:    "web development",
			Categories:  []string{"web development"},
			ImageURL:    "/images/vepo.jpg",
			WebpURL:     "/images/vepo.webp",
			Description: "Vepo Clear Water project entails the creation of an application dedicated to vending bottled, purified, drinking water. This ongoing development focuses on crafting an intuitive and efficient platform to streamline the process of accessing clean drinking water for users.",
			DemoURL:     "https://tech-boffin.github.io/vepo-landing-page/",
			SortOrder:   1,
			IsActive:    true,
		},
		{
			Title:       "Plutus Capital",
			Category:    "web development",
			Categories:  []string{"web development"},
			ImageURL:    "/images/plutus-capital.jpg",
			WebpURL:     "/images/plutus-capital.webp",
			Description: "Worked together in a team project at Plutus Capital, crafting an advanced web platform for managing investments. Tasks involved creating backend algorithms and ensuring seamless integration between frontend and backend systems. Employed technologies like Python, Flask, SQL, and JavaScript.",
			DemoURL:     "https://plutus.co.ke/",
			GitHubURL:   "https://github.com/WinterJackson/Plutus_Capital",
			SortOrder:   2,
			IsActive:    true,
		},
		{
			Title:       "BTS Sizing Tool",
			Category:    "applications",
			Categories:  []string{"applications"},
			ImageURL:    "/images/bts-sizing-tool.jpg",
			WebpURL:     "/images/bts-sizing-tool.webp",
			Description: "A specialized calculator tool to streamline solar panel installations. This Python-based application offered two primary functionalities: calculating the required number of solar panels and determining the appropriate battery specifications for each project.",
			GitHubURL:   "https://github.com/WinterJackson/BTS-Sizing-Tool",
			SortOrder:   3,
			IsActive:    true,
		},
		{
			Title:       "Yikes YouTube Downloader",
			Category:    "applications",
			Categories:  []string{"applications", "personal projects"},
			ImageURL:    "/images/yikes-ytd.jpg",
			WebpURL:     "/images/yikes-ytd.webp",
			Description: "Yikes YTD is a versatile YouTube video downloader application designed to download both individual videos and entire playlists. Currently functional on Linux platforms, the application is undergoing development for compatibility with Windows and iOS.",
			DemoURL:     "https://winterjackson.github.io/site-yikes-ytd/index.html",
			GitHubURL:   "https://github.com/WinterJackson/Yikes-YTD",
			SortOrder:   4,
			IsActive:    true,
		},
		{
			Title:       "AllCurrency",
			Category:    "personal projects",
			Categories:  []string{"personal projects"},
			ImageURL:    "/images/acc.jpg",
			WebpURL:     "/images/acc.webp",
			Description: "AllCurrency was developed as a platform to provide comprehensive information about global cryptocurrencies. Leveraging a free API, the platform offered users access to real-time exchange rates, historical exchange rate data, and a currency converter tool.",
			DemoURL:     "https://all-currency-crypto.vercel.app/",
			GitHubURL:   "https://github.com/WinterJackson/allCurrencyCrypto",
			SortOrder:   5,
			IsActive:    true,
		},
	}
	db.DB.Create(&projects)

	fmt.Println("✅ 示例项目创建完成")
}

// 创建服务与个人方向条目
func seedServices() {
	var count int64
	db.DB.Model(&db.Service{}).Count(&count)
	if count > 0 {
		fmt.Println("服务已存在，跳过创建")
		return
	}

	services := []db.Service{
		{Title: "Frontend Development", Description: "Well thought out User Interfaces for web applications to enhance the User Experience effectively.", IconURL: "/images/front-dev.png", Category: db.ServiceCategoryService, SortOrder: 1},
		{Title: "Backend Development", Description: "Effective backend development for data security and proper data storage.", IconURL: "/images/back-dev.png", Category: db.ServiceCategoryService, SortOrder: 2},
		{Title: "Mobile apps", Description: "Effective development of applications for both iOS and Android systems.", IconURL: "/images/phone-app.png", Category: db.ServiceCategoryService, SortOrder: 3},
		{Title: "API Development", Description: "Development of the Application Programming Interface to enhance effective communication between the servers and the clients.", IconURL: "/images/api.png", Category: db.ServiceCategoryService, SortOrder: 4},
		{Title: "Artificial Intelligence", Description: "Together with Machine Learning, Artificial Intelligence has imensely impacted the tech world.", IconURL: "/images/artificial-intelligence.png", Category: db.ServiceCategoryVenture, SortOrder: 5},
		{Title: "Cyber Security", Description: "As data greatly becomes the gold mine for people in the tech world, cyber security has now been more on demand than ever.", IconURL: "/images/robotics.png", Category: db.ServiceCategoryVenture, SortOrder: 6},
	}
	db.DB.Create(&services)

	fmt.Println("✅ 服务条目创建完成")
}

// 创建工作经历
func seedExperience() {
	var count int64
	db.DB.Model(&db.Experience{}).Count(&count)
	if count > 0 {
		fmt.Println("工作经历已存在，跳过创建")
		return
	}

	entries := []db.Experience{
		{JobTitle: "Junior Software Developer.", Company: "Snark Health", StartDate: "April 2024", EndDate: "Current", Description: "Updating the Android App: Adapting the app to the latest Next.js framework and deploying the dashboard.\n\nHospital Search: Adding the hospital search feature and booking functionality.\n\nEMR Integration: Connecting the app with the EMR dashboard for seamless communication.", SortOrder: 1},
		{JobTitle: "Junior Software Developer.", Company: "Vepo Clear Water Ltd.", StartDate: "September 2023", EndDate: "March 2024", Description: "Participating in the design, development, and testing of a sales and production automation application.\n\nCollaborating with other software engineers to execute project requirements and translate them into technical specifications.", SortOrder: 2},
		{JobTitle: "Data Analyst Intern.", Company: "Apollo Agriculture", StartDate: "October 2021", EndDate: "April 2022", Description: "Data Collection. Gathering and cleaning data from various sources, including customer transactions, credit applications, and agricultural training records.\n\nAnalyzing customer insights and feedback to enhance product improvements.", SortOrder: 3},
		{JobTitle: "Credit Analyst", Company: "Momentum Credit Ltd.", StartDate: "March 2021", EndDate: "September 2021", Description: "Analyzing financial data, such as income statements, balance sheets, and cash flow statements, to evaluate the applicant's financial health.\n\nAssessing the creditworthiness of individuals or businesses applying for loans or credit lines.", SortOrder: 4},
		{JobTitle: "Merchandiser / Brand Ambassador", Company: "Swivel Marketing Agency", StartDate: "February 2019", EndDate: "January 2020", Description: "Representing the brands being marketed positively in different marketing strategies carried out.\n\nParticipating in event planning aimed at marketing the brands.", SortOrder: 5},
		{JobTitle: "Attachment, Supply Chain Mgt. Department", Company: "Kenya National Treasury", StartDate: "September 2018", EndDate: "November 2018", Description: "Keeping records of inventory in the National Treasury stores.\n\nRetrieval and issuance of stored items from the stores to the authorized personnel.", SortOrder: 6},
	}
	db.DB.Create(&entries)

	fmt.Println("✅ 工作经历创建完成")
}

// 创建教育经历
func seedEducation() {
	var count int64
	db.DB.Model(&db.Education{}).Count(&count)
	if count > 0 {
		fmt.Println("教育经历已存在，跳过创建")
		return
	}

	entries := []db.Education{
		{Institution: "Moringa School, Nairobi", Degree: "Software Engineering", Field: "Software Engineering", StartDate: "May 2023", EndDate: "November 2024", SortOrder: 1},
		{Institution: "European Business University, Luxembourg", Degree: "Certificate", Field: "Management Information Systems", StartDate: "September 2022", EndDate: "March 2023", SortOrder: 2},
		{Institution: "Kenyatta University, Nairobi", Degree: "BSc. Commerce", Field: "Procurement & Supply Chain Management", StartDate: "September 2016", EndDate: "July 2022", SortOrder: 3},
	}
	db.DB.Create(&entries)

	fmt.Println("✅ 教育经历创建完成")
}

// 创建技能条目
func seedSkills() {
	var count int64
	db.DB.Model(&db.Skill{}).Count(&count)
	if count > 0 {
		fmt.Println("技能已存在，跳过创建")
		return
	}

	skills := []db.Skill{
		{Name: "JavaScript", Percentage: 90, Category: "frontend", SortOrder: 1, IconURL: "logo-javascript"},
		{Name: "React", Percentage: 85, Category: "frontend", SortOrder: 2, IconURL: "logo-react"},
		{Name: "Next.js", Percentage: 80, Category: "frontend", SortOrder: 3},
		{Name: "Node.js", Percentage: 75, Category: "backend", SortOrder: 4, IconURL: "logo-nodejs"},
		{Name: "Python", Percentage: 70, Category: "backend", SortOrder: 5, IconURL: "logo-python"},
		{Name: "PostgreSQL", Percentage: 75, Category: "database", SortOrder: 6},
		{Name: "Git", Percentage: 85, Category: "tools", SortOrder: 7, IconURL: "git-branch-outline"},
		{Name: "Docker", Percentage: 60, Category: "tools", SortOrder: 8, IconURL: "cube-outline"},
	}
	db.DB.Create(&skills)

	fmt.Println("✅ 技能创建完成")
}

// 创建合作客户
func seedClients() {
	var count int64
	db.DB.Model(&db.Client{}).Count(&count)
	if count > 0 {
		fmt.Println("客户已存在，跳过创建")
		return
	}

	clients := []db.Client{
		{Name: "AllCurrency", LogoURL: "/images/allCurrency-logo.webp", SortOrder: 1, IsActive: true},
		{Name: "Plutus", LogoURL: "/images/plutus-logo.webp", SortOrder: 2, IsActive: true},
		{Name: "Vepo", LogoURL: "/images/vepo-logo.webp", SortOrder: 3, IsActive: true},
		{Name: "Yikes", LogoURL: "/images/yikes-logo.webp", SortOrder: 4, IsActive: true},
	}
	db.DB.Create(&clients)

	fmt.Println("✅ 合作客户创建完成")
}

// 创建客户评价
func seedTestimonials() {
	var count int64
	db.DB.Model(&db.Testimonial{}).Count(&count)
	if count > 0 {
		fmt.Println("客户评价已存在，跳过创建")
		return
	}

	testimonials := []db.Testimonial{
		{Name: "Jeremy Omare", Role: "Renewable Energy Professional.", Company: "Best Energy", Text: "\"Exceptional service! Jackson provided unparalleled expertise and support throughout the entire development process. The attention to detail and commitment to delivering high-quality results exceeded my expectations.\"", AvatarURL: "/images/user.png", LinkedInURL: "https://www.linkedin.com/in/jeremyomare/", SortOrder: 1, IsActive: true},
		{Name: "Nelson Lawrence", Role: "MD, Pinnacle Green Systems Ltd.", Company: "Pinnacle Green Systems Ltd.", Text: "\"Working with Winter Jackson, on my project has been a positive experience so far. The collaborative nature and innovative solutions have made the development process smooth and efficient.\"", AvatarURL: "/images/user.png", LinkedInURL: "https://www.linkedin.com/in/nelson-lawrence-91bb2671/", SortOrder: 2, IsActive: true},
		{Name: "Kimathi I.", Role: "Investment Manager", Company: "Plutus Capital", Text: "\"Absolutely reliable and highly efficient! Not only was our project completed well ahead of schedule, but the quality of work delivered surpassed the expectations.\"", AvatarURL: "/images/user.png", LinkedInURL: "https://www.linkedin.com/in/ikiao/", SortOrder: 3, IsActive: true},
	}
	db.DB.Create(&testimonials)

	fmt.Println("✅ 客户评价创建完成")
}

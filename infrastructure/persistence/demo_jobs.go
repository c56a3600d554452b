package persistence

import (
	"time"

	"jobcast/domain/model"
)

// DemoJobs returns the fixed sample dataset served when the primary store is
// unreachable. Timestamps are relative so the listing always looks fresh.
func DemoJobs() []model.Job {
	now := time.Now().UTC()
	return []model.Job{
		{
			ID:             "job_demo_1",
			Title:          "Senior Frontend Developer",
			Company:        "Farcaster Protocol",
			Location:       "San Francisco, CA",
			Type:           "full-time",
			Remote:         true,
			SalaryMin:      150000,
			SalaryMax:      200000,
			SalaryCurrency: "USD",
			Description:    "Build the future of decentralized social media with React and TypeScript. Work on cutting-edge protocols and help shape the next generation of social networks.",
			Requirements: []string{
				"5+ years of React experience",
				"TypeScript proficiency",
				"Web3/blockchain knowledge",
				"Experience with modern frontend tooling",
				"Understanding of decentralized protocols",
			},
			Benefits: []string{
				"Competitive equity package",
				"Health, dental, vision insurance",
				"Remote-first culture",
				"Conference and learning budget",
				"Top-tier equipment",
			},
			Tags: []string{"React", "TypeScript", "Web3", "Farcaster", "Frontend"},
			PostedBy: model.JobPoster{
				Fid:         3621,
				Username:    "farcaster",
				DisplayName: "Farcaster",
				PfpURL:      "https://i.imgur.com/farcaster.jpg",
			},
			PostedAt:         now.Add(-2 * 24 * time.Hour),
			ApplicationURL:   "https://jobs.farcaster.xyz/apply/frontend",
			ApplicationCount: 12,
			Featured:         true,
			PaymentTxHash:    "0x1234567890abcdef",
		},
		{
			ID:             "job_demo_2",
			Title:          "Smart Contract Engineer",
			Company:        "Base Protocol",
			Location:       "New York, NY",
			Type:           "full-time",
			Remote:         false,
			SalaryMin:      140000,
			SalaryMax:      180000,
			SalaryCurrency: "USD",
			Description:    "Design and implement secure smart contracts for our L2 scaling solution. Work with cutting-edge blockchain technology.",
			Requirements: []string{
				"3+ years Solidity experience",
				"Deep understanding of Ethereum",
				"Security audit experience",
				"Gas optimization expertise",
			},
			Benefits: []string{
				"Token allocation",
				"Relocation assistance",
				"Health insurance",
				"Flexible hours",
			},
			Tags: []string{"Solidity", "Ethereum", "L2", "Smart Contracts", "Base"},
			PostedBy: model.JobPoster{
				Fid:         5678,
				Username:    "base",
				DisplayName: "Base",
				PfpURL:      "https://i.imgur.com/base.jpg",
			},
			PostedAt:         now.Add(-24 * time.Hour),
			ApplicationURL:   "https://base.org/careers",
			ApplicationCount: 8,
		},
		{
			ID:             "job_demo_3",
			Title:          "Community Manager",
			Company:        "Warpcast",
			Location:       "Remote",
			Type:           "part-time",
			Remote:         true,
			SalaryMin:      50000,
			SalaryMax:      70000,
			SalaryCurrency: "USD",
			Description:    "Help grow and nurture the Farcaster community. Engage with users, moderate content, and drive community initiatives.",
			Requirements: []string{
				"Experience in community management",
				"Deep understanding of Farcaster",
				"Excellent communication skills",
				"Social media expertise",
			},
			Benefits: []string{
				"Flexible schedule",
				"Remote work",
				"Community perks",
				"Growth opportunities",
			},
			Tags: []string{"Community", "Social Media", "Farcaster", "Remote"},
			PostedBy: model.JobPoster{
				Fid:         9152,
				Username:    "warpcast",
				DisplayName: "Warpcast",
				PfpURL:      "https://i.imgur.com/warpcast.jpg",
			},
			PostedAt:         now.Add(-6 * time.Hour),
			ApplicationCount: 5,
		},
	}
}

// Package content holds the site's blog posts as an in-memory array.
// Posts are authored directly in this file; there is no CMS behind them.
package content

import "sort"

// BlogPost is one blog entry. Content is plain text with blank-line paragraphs.
type BlogPost struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Date        string   `json:"date"` // ISO date, YYYY-MM-DD
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ReadingTime string   `json:"readingTime"`
	Content     string   `json:"content,omitempty"`
}

// Posts returns all blog posts, newest first. The returned slice is shared;
// callers must not mutate it.
func Posts() []BlogPost {
	return blogPosts
}

// PostBySlug returns the post with the given slug, or false if none exists.
func PostBySlug(slug string) (BlogPost, bool) {
	for _, p := range blogPosts {
		if p.Slug == slug {
			return p, true
		}
	}
	return BlogPost{}, false
}

// AdjacentPosts returns the neighbors of the post with the given slug in
// newest-first order. Either neighbor may be nil at the ends of the list,
// and both are nil for an unknown slug.
func AdjacentPosts(slug string) (prev, next *BlogPost) {
	for i := range blogPosts {
		if blogPosts[i].Slug != slug {
			continue
		}
		if i > 0 {
			prev = &blogPosts[i-1]
		}
		if i < len(blogPosts)-1 {
			next = &blogPosts[i+1]
		}
		return prev, next
	}
	return nil, nil
}

func init() {
	sort.SliceStable(blogPosts, func(i, j int) bool {
		return blogPosts[i].Date > blogPosts[j].Date
	})
}

var blogPosts = []BlogPost{
	{
		Slug:        "getting-started-with-aws-ec2",
		Title:       "Getting Started with AWS EC2: A Practical Guide",
		Date:        "2025-01-10",
		Description: "What EC2 is, when to use it, how to launch, secure, and deploy a simple app.",
		Tags:        []string{"AWS", "EC2", "Cloud", "DevOps"},
		ReadingTime: "6 min",
		Content: `EC2 is Amazon's elastic compute in the cloud. Think of it as a virtual machine you can start in minutes and pay for only while it's running.

When to use EC2: when you want full control over the OS, networking, and runtime. It's great for APIs, workers, and long-running services. If you need zero-maintenance containers, consider ECS or EKS.

Setup summary I use:
- Choose Amazon Linux 2023 or Ubuntu LTS.
- Instance type: t3.micro or t3.small for side projects.
- Storage: 16-32 GB gp3 is enough.
- Security group: open only 22 (SSH) to your IP and 80/443 for web.
- Key pair: create and keep it safe.

Hygiene:
- Create a non-root user; disable password SSH; use ufw or iptables.
- Keep the system updated.
- Use a process manager (pm2/systemd) so apps restart on crash.

Deployment approach:
- For Node/Next, build locally or CI, then deploy artifacts via SSH, or use Docker.
- For TLS, use a reverse proxy (nginx or Caddy). I prefer Caddy for its automatic HTTPS.

Cost tips:
- Stop dev instances when not in use.
- Use savings plans or spot for batch workloads.

EC2 gives you flexibility without locking you in. Start small, automate later, and keep security tight from day one.`,
	},
	{
		Slug:        "jenkins-ci-basics-with-pipelines",
		Title:       "Jenkins CI Basics with Declarative Pipelines",
		Date:        "2025-01-20",
		Description: "Set up Jenkins, write a simple pipeline, and ship on every push.",
		Tags:        []string{"Jenkins", "CI/CD", "Pipelines"},
		ReadingTime: "5 min",
		Content: `Jenkins is a battle-tested CI server. It's self-hosted, plugin-rich, and excels when you need custom control.

Quick setup:
- Run Jenkins in Docker; map port 8080 and a persistent volume.
- Install suggested plugins, then add Pipeline and Git.
- Create a credential (SSH or token) for your repo.

A simple declarative pipeline has stages like Checkout, Build, Test, Deploy. You can cache dependencies, run in parallel, and post notifications.

When to pick Jenkins:
- You need freedom to run anything on your own hardware.
- You want custom agents with preinstalled tools.

Tips:
- Keep the Jenkinsfile near your code.
- Treat your Jenkins config as code (Job DSL/Configuration as Code).
- Lock down admin access and agent permissions.

With the basics in place, Jenkins can take you from "works on my machine" to a repeatable, trustworthy delivery flow.`,
	},
	{
		Slug:        "building-automations-with-n8n",
		Title:       "Building Practical Automations with n8n",
		Date:        "2025-02-01",
		Description: "Create low-code workflows to connect APIs, webhooks, and background jobs.",
		Tags:        []string{"n8n", "Automation", "Workflows"},
		ReadingTime: "5 min",
		Content: `n8n is a flexible, open-source automation tool. It connects services (HTTP, databases, queues) without heavy code.

How I use it:
- Webhook trigger, transform payload, call external API, store in DB.
- Cron trigger, fetch analytics, send Slack summary.

Why it's nice:
- Visual, yet scriptable with Code nodes.
- Self-hosted, so data stays with you.
- Marketplace nodes cover common services.

Best practices:
- Keep credentials in vaults, not in nodes.
- Add retry and error branches.
- Use sub-workflows for reuse.

If you have repetitive tasks (syncing, alerts, enrichment), n8n lets you ship value fast with guardrails.`,
	},
	{
		Slug:        "building-with-cursor-agents",
		Title:       "Building with Cursor Agents: My Workflow",
		Date:        "2025-02-15",
		Description: "How I use AI agents in Cursor to scaffold features and refactor safely.",
		Tags:        []string{"AI", "Cursor", "Agents", "DX"},
		ReadingTime: "4 min",
		Content: `Cursor agents shine when you guide them well. I treat them like strong pair programmers: clear goals, small steps, fast feedback.

What works for me:
- Write a short brief with constraints (tech, style, tests).
- Let the agent propose diffs; review, then iterate.
- Keep edits small; run lints and tests after each chunk.

Good use-cases:
- Bootstrapping CRUD modules and UI scaffolds.
- Safe refactors where the agent updates imports and types consistently.
- Repetitive wiring (routes, configs, providers).

Avoid:
- Letting agents change unrelated files.
- Skipping code review; humans catch nuance.

Used well, agents raise the floor and free your time for design and tricky edge cases.`,
	},
	{
		Slug:        "experimenting-with-comet",
		Title:       "Experimenting with Comet for ML Experiment Tracking",
		Date:        "2025-02-20",
		Description: "Track metrics, compare runs, and keep ML experiments organized.",
		Tags:        []string{"Comet", "MLOps", "Experiment Tracking"},
		ReadingTime: "4 min",
		Content: `Comet makes it easy to log metrics, hyperparameters, and artifacts from ML runs.

Why it helps:
- You get history and comparisons for free.
- Charts reveal regressions early.
- Collaboration is built-in.

Getting started:
- Install the SDK and set the API key.
- Log metrics inside your training loop.
- Attach artifacts (models, plots) for later analysis.

If your ML work has outgrown spreadsheets and ad-hoc notes, Comet adds just enough structure without getting in your way.`,
	},
}

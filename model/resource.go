package model

// ResourceType identifies the concrete category of a discovered resource.
type ResourceType string

const (
	TypeVM         ResourceType = "vm"
	TypeBucket     ResourceType = "bucket"
	TypeDatabase   ResourceType = "database"
	TypeCluster    ResourceType = "cluster"
	TypeRedis      ResourceType = "redis"
	TypeSpanner    ResourceType = "spanner"
	TypeRunService ResourceType = "run_service"
	TypeScheduler  ResourceType = "scheduler"
)

// TypeOrder is the fixed order in which resource categories are collected and reported.
var TypeOrder = []ResourceType{
	TypeVM,
	TypeBucket,
	TypeDatabase,
	TypeCluster,
	TypeRedis,
	TypeSpanner,
	TypeRunService,
	TypeScheduler,
}

// TypeLabels maps resource categories to display names.
var TypeLabels = map[ResourceType]string{
	TypeVM:         "Virtual Machines",
	TypeBucket:     "Storage Buckets",
	TypeDatabase:   "Cloud SQL",
	TypeCluster:    "GKE Clusters",
	TypeRedis:      "Memorystore for Redis",
	TypeSpanner:    "Spanner",
	TypeRunService: "Cloud Run Services",
	TypeScheduler:  "Cloud Scheduler",
}

// Relationship is a directed edge from a resource to another asset.
type Relationship struct {
	Target string
	Type   string
}

// Resource is the common view over every discovered resource category.
type Resource interface {
	ResourceName() string
	ResourceCost() float64
	ResourceEdges() []Relationship
}

// ResourceMeta carries the fields shared by every resource category.
type ResourceMeta struct {
	Name          string
	MonthlyCost   float64
	Relationships []Relationship
}

func (m ResourceMeta) ResourceName() string          { return m.Name }
func (m ResourceMeta) ResourceCost() float64         { return m.MonthlyCost }
func (m ResourceMeta) ResourceEdges() []Relationship { return m.Relationships }

// VMInstance is a Compute Engine instance.
type VMInstance struct {
	ResourceMeta
	MachineType string
	Zone        string
	Status      string
}

// StorageBucket is a Cloud Storage bucket with an estimated size.
type StorageBucket struct {
	ResourceMeta
	SizeGB       float64
	StorageClass string
	Location     string
}

// DatabaseInstance is a managed Cloud SQL instance.
type DatabaseInstance struct {
	ResourceMeta
	Engine string
}

// GKECluster is a container cluster.
type GKECluster struct {
	ResourceMeta
}

// RedisInstance is a Memorystore for Redis instance.
type RedisInstance struct {
	ResourceMeta
}

// SpannerInstance is a Spanner instance.
type SpannerInstance struct {
	ResourceMeta
}

// RunService is a Cloud Run service.
type RunService struct {
	ResourceMeta
}

// SchedulerJob is a Cloud Scheduler job definition.
type SchedulerJob struct {
	ResourceMeta
}

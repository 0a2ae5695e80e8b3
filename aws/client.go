package aws

import (
	"context"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/go-faster/errors"
)

// Client wraps the EC2 and Lambda service clients behind the small surface
// the dashboard needs. All calls are one-shot request/response; errors carry
// the provider detail verbatim so the caller can classify expired sessions.
type Client struct {
	ec2    *ec2.Client
	lambda *lambda.Client
	Region string
}

// NewClient builds a client for the given identity using the shared AWS
// config chain.
func NewClient(ctx context.Context, id Identity) (*Client, error) {
	var opts []func(*config.LoadOptions) error
	if id.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(id.Profile))
	}
	if id.Region != "" {
		opts = append(opts, config.WithRegion(id.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	return &Client{
		ec2:    ec2.NewFromConfig(cfg),
		lambda: lambda.NewFromConfig(cfg),
		Region: region,
	}, nil
}

// ListInstances fetches all EC2 instances in the region.
func (c *Client) ListInstances(ctx context.Context) ([]Instance, error) {
	out, err := c.ec2.DescribeInstances(ctx, &ec2.DescribeInstancesInput{})
	if err != nil {
		return nil, errors.Wrap(err, "describe instances")
	}

	var instances []Instance
	for _, res := range out.Reservations {
		for _, in := range res.Instances {
			id := awssdk.ToString(in.InstanceId)

			name := id
			for _, tag := range in.Tags {
				if awssdk.ToString(tag.Key) == "Name" && awssdk.ToString(tag.Value) != "" {
					name = awssdk.ToString(tag.Value)
					break
				}
			}

			state := "unknown"
			if in.State != nil {
				state = string(in.State.Name)
			}

			var launch *time.Time
			if in.LaunchTime != nil {
				t := *in.LaunchTime
				launch = &t
			}

			instances = append(instances, Instance{
				ID:         id,
				Name:       name,
				Type:       string(in.InstanceType),
				State:      state,
				PublicIP:   awssdk.ToString(in.PublicIpAddress),
				LaunchTime: launch,
			})
		}
	}
	return instances, nil
}

// StartInstance starts a stopped EC2 instance.
func (c *Client) StartInstance(ctx context.Context, id string) error {
	_, err := c.ec2.StartInstances(ctx, &ec2.StartInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		return errors.Wrapf(err, "start instance %s", id)
	}
	return nil
}

// StopInstance stops a running EC2 instance.
func (c *Client) StopInstance(ctx context.Context, id string) error {
	_, err := c.ec2.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		return errors.Wrapf(err, "stop instance %s", id)
	}
	return nil
}

// TerminateInstance terminates an EC2 instance. Irreversible.
func (c *Client) TerminateInstance(ctx context.Context, id string) error {
	_, err := c.ec2.TerminateInstances(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		return errors.Wrapf(err, "terminate instance %s", id)
	}
	return nil
}

// ListFunctions fetches all Lambda functions in the region.
func (c *Client) ListFunctions(ctx context.Context) ([]Function, error) {
	out, err := c.lambda.ListFunctions(ctx, &lambda.ListFunctionsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "list functions")
	}

	functions := make([]Function, 0, len(out.Functions))
	for _, f := range out.Functions {
		functions = append(functions, Function{
			Name:         awssdk.ToString(f.FunctionName),
			Runtime:      string(f.Runtime),
			MemoryMB:     awssdk.ToInt32(f.MemorySize),
			LastModified: awssdk.ToString(f.LastModified),
			Description:  awssdk.ToString(f.Description),
		})
	}
	return functions, nil
}

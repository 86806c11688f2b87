package jira

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/GithubESPI/dotationsFrontend/internal/application/jiraasset/usecases"
	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/database"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/GithubESPI/dotationsFrontend/internal/interfaces/http"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/constants"
)

var (
	env            string
	configPath     string
	schemaName     string
	objectTypeName string
	limit          int
	noDetect       bool
	mappingFile    string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jira",
		Short: "Jira Assets tools",
		Long:  `Detect attribute mappings of a Jira Assets object type and synchronize its objects into the equipment inventory.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.PersistentFlags().StringVar(&schemaName, "schema", "", "Object schema name (default: jira.default_schema)")
	cmd.PersistentFlags().StringVar(&objectTypeName, "object-type", "", "Object type name (default: jira.default_object_type)")

	cmd.AddCommand(
		newDetectCommand(),
		newSyncCommand(),
	)

	return cmd
}

func newDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Detect the attribute mapping and print it as a jira.mappings config block",
		RunE:  runDetect,
	}
}

func newSyncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Create or update equipment from Jira Assets objects",
		RunE:  runSync,
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of objects to read (0 uses the default)")
	cmd.Flags().BoolVar(&noDetect, "no-detect", false, "Only use configured mappings, never auto-detect")
	cmd.Flags().StringVarP(&mappingFile, "mapping-file", "m", "", "YAML attribute mapping that overrides configured and detected mappings")

	return cmd
}

// withOperations builds the application container without background jobs and
// runs fn against its use cases.
func withOperations(ctx context.Context, fn func(ops httpRouter.Operations) error) error {
	cfg, log, err := bootstrap.Init(bootstrap.Options{
		Env:          env,
		ConfigPath:   configPath,
		WithDatabase: true,
	})
	if err != nil {
		return err
	}
	defer database.Close()

	cfg.Scheduler.Enabled = false

	container, err := httpRouter.NewContainer(ctx, database.Get(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application container: %w", err)
	}
	defer container.Shutdown()

	return fn(container.Operations())
}

func runDetect(cmd *cobra.Command, args []string) error {
	return withOperations(cmd.Context(), func(ops httpRouter.Operations) error {
		detection, err := ops.DetectMapping.Execute(cmd.Context(), usecases.DetectMappingCommand{
			SchemaName:     schemaName,
			ObjectTypeName: objectTypeName,
		})
		if err != nil {
			return fmt.Errorf("detection failed: %w", err)
		}

		objectType := objectTypeName
		if objectType == "" {
			objectType = "default"
		}
		if len(detection.Missing) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "missing fields: %s\n", joinFields(detection.Missing))
		}
		return writeMappingYAML(cmd.OutOrStdout(), objectType, detection)
	})
}

func runSync(cmd *cobra.Command, args []string) error {
	var mapping *jiraasset.AttributeMapping
	if mappingFile != "" {
		m, err := loadMappingFile(mappingFile)
		if err != nil {
			return err
		}
		mapping = m
	}

	return withOperations(cmd.Context(), func(ops httpRouter.Operations) error {
		autoDetect := !noDetect
		stats, err := ops.SyncAssets.Execute(cmd.Context(), usecases.SyncAssetsCommand{
			SchemaName:     schemaName,
			ObjectTypeName: objectTypeName,
			Limit:          limit,
			AutoDetect:     &autoDetect,
			Mapping:        mapping,
		})
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\nJira sync (%s mapping):\n", stats.MappingOrigin)
		fmt.Fprintf(out, "  Total:   %d\n", stats.Total)
		fmt.Fprintf(out, "  Created: %d\n", stats.Created)
		fmt.Fprintf(out, "  Updated: %d\n", stats.Updated)
		fmt.Fprintf(out, "  Skipped: %d\n", stats.Skipped)
		fmt.Fprintf(out, "  Errors:  %d\n", stats.Errors)
		return nil
	})
}

// loadMappingFile reads an attribute mapping written with the JSON field names,
// e.g. "serialNumberAttrId: \"101\"".
func loadMappingFile(path string) (*jiraasset.AttributeMapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mapping file: %w", err)
	}
	defer f.Close()

	return decodeMapping(f)
}

func decodeMapping(r io.Reader) (*jiraasset.AttributeMapping, error) {
	var m jiraasset.AttributeMapping
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("invalid mapping file: %w", err)
	}
	if m.SerialNumberAttrID == "" {
		return nil, fmt.Errorf("invalid mapping file: serialNumberAttrId is required")
	}
	return &m, nil
}

// mappingBlock uses the key names of the jira.mappings config section.
type mappingBlock struct {
	SerialNumberAttrID string `yaml:"serial_number_attr_id,omitempty"`
	BrandAttrID        string `yaml:"brand_attr_id,omitempty"`
	ModelAttrID        string `yaml:"model_attr_id,omitempty"`
	TypeAttrID         string `yaml:"type_attr_id,omitempty"`
	StatusAttrID       string `yaml:"status_attr_id,omitempty"`
	InternalIDAttrID   string `yaml:"internal_id_attr_id,omitempty"`
	AssignedUserAttrID string `yaml:"assigned_user_attr_id,omitempty"`
}

type configDocument struct {
	Jira struct {
		Mappings map[string]mappingBlock `yaml:"mappings"`
	} `yaml:"jira"`
}

// writeMappingYAML prints the detection as a config fragment. The sample value of
// each detected attribute is attached as a line comment.
func writeMappingYAML(w io.Writer, objectType string, detection *jiraasset.Detection) error {
	m := detection.Mapping

	var doc configDocument
	doc.Jira.Mappings = map[string]mappingBlock{
		objectType: {
			SerialNumberAttrID: m.SerialNumberAttrID,
			BrandAttrID:        m.BrandAttrID,
			ModelAttrID:        m.ModelAttrID,
			TypeAttrID:         m.TypeAttrID,
			StatusAttrID:       m.StatusAttrID,
			InternalIDAttrID:   m.InternalIDAttrID,
			AssignedUserAttrID: m.AssignedUserAttrID,
		},
	}

	var root yaml.Node
	if err := root.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode mapping: %w", err)
	}
	annotate(&root, detection)
	if detection.SampleID != "" {
		root.HeadComment = "detected from object " + detection.SampleID
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return fmt.Errorf("failed to write mapping: %w", err)
	}
	return enc.Close()
}

// annotate walks the encoded document and comments every detected attribute id
// with the sample value it was detected from.
func annotate(node *yaml.Node, detection *jiraasset.Detection) {
	samples := make(map[string]string, len(detection.Detected))
	for _, d := range detection.Detected {
		samples[d.AttributeID] = d.Sample
	}

	var walk func(n *yaml.Node)
	walk = func(n *yaml.Node) {
		if n.Kind == yaml.MappingNode {
			for i := 0; i+1 < len(n.Content); i += 2 {
				value := n.Content[i+1]
				if value.Kind == yaml.ScalarNode {
					if sample, ok := samples[value.Value]; ok && sample != "" {
						value.LineComment = "e.g. " + sample
					}
					continue
				}
				walk(value)
			}
			return
		}
		for _, child := range n.Content {
			walk(child)
		}
	}
	walk(node)
}

func joinFields(fields []jiraasset.Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}

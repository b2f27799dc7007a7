package k8s

import (
	"context"
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/kubecare/kubectl-diagnose/pkg/model"
)

type Client struct {
	clientset kubernetes.Interface
}

// NewClient creates a new Kubernetes client
func NewClient(kubeconfig string) (*Client, error) {
	var config *rest.Config
	var err error

	// Try in-cluster config first
	config, err = rest.InClusterConfig()
	if err != nil {
		// Fall back to kubeconfig
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create config: %w", err)
		}
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}

	return &Client{clientset: clientset}, nil
}

// NewWithClientset wraps an existing clientset (fake in tests).
func NewWithClientset(clientset kubernetes.Interface) *Client {
	return &Client{clientset: clientset}
}

// GatherPodContext collects one pod's status plus whatever error text the
// cluster has for it: container waiting/terminated reasons and messages,
// and recent Warning events. An empty ErrorText means the pod looks healthy.
func (c *Client) GatherPodContext(ctx context.Context, namespace, name string) (*model.PodContext, error) {
	pod, err := c.clientset.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get pod %s: %w", name, err)
	}

	pc := &model.PodContext{
		Name:      pod.Name,
		Namespace: pod.Namespace,
		Status:    podStatus(pod),
	}

	var errLines []string
	errLines = append(errLines, containerErrors(pod)...)

	events, err := c.podWarningEvents(ctx, namespace, name)
	if err == nil {
		errLines = append(errLines, events...)
	}

	pc.ErrorText = strings.Join(dedupe(errLines), "\n")
	return pc, nil
}

// podStatus mirrors what kubectl shows in the STATUS column: a container
// waiting/terminated reason when one exists, otherwise the pod phase.
func podStatus(pod *corev1.Pod) string {
	for _, cs := range pod.Status.ContainerStatuses {
		if w := cs.State.Waiting; w != nil && w.Reason != "" {
			return w.Reason
		}
		if t := cs.State.Terminated; t != nil && t.Reason != "" && t.Reason != "Completed" {
			return t.Reason
		}
	}
	return string(pod.Status.Phase)
}

func containerErrors(pod *corev1.Pod) []string {
	var lines []string
	for _, cs := range pod.Status.ContainerStatuses {
		if w := cs.State.Waiting; w != nil && w.Message != "" {
			lines = append(lines, w.Message)
		}
		if t := cs.State.Terminated; t != nil && t.Message != "" {
			lines = append(lines, t.Message)
		}
	}
	return lines
}

func (c *Client) podWarningEvents(ctx context.Context, namespace, name string) ([]string, error) {
	events, err := c.clientset.CoreV1().Events(namespace).List(ctx, metav1.ListOptions{
		FieldSelector: "involvedObject.name=" + name,
	})
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, ev := range events.Items {
		if ev.Type != corev1.EventTypeWarning || ev.Message == "" {
			continue
		}
		lines = append(lines, ev.Message)
	}
	return lines, nil
}

// dedupe keeps first occurrences; repeated event messages are common for
// crash-looping pods and only add noise to the prompt.
func dedupe(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	var out []string
	for _, l := range lines {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
